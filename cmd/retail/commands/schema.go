package commands

import (
	"errors"

	"github.com/marshallshelly/retail-console/pkg/console"
	"github.com/spf13/cobra"
)

// schemaCmd groups schema maintenance
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the retail database schema",
}

// schemaInitCmd creates the retail tables
var schemaInitCmd = &cobra.Command{
	Use:   "init <dbname> <port> <user> [password]",
	Short: "Create missing retail tables",
	Long: `Create the users, store, product, warehouse, orders, productSupplyRequests
and productUpdates tables if they do not exist yet. Existing tables and data
are left untouched, so the command is safe to run repeatedly.

Examples:
  retail schema init retaildb 5432 postgres`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaInit(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaInitCmd)
}

func runSchemaInit(cmd *cobra.Command, args []string) error {
	cfg, err := configFromArgs(args)
	if errors.Is(err, errUsage) {
		return cmd.Usage()
	}
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	out := console.NewPrinter(cmd.OutOrStdout())

	gw, err := connect(ctx, out, cfg, log)
	if err != nil {
		return err
	}
	defer gw.Close(ctx)

	if err := gw.Bootstrap(ctx); err != nil {
		return err
	}
	out.Success("Schema ready")
	return nil
}
