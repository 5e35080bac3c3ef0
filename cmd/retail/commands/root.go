package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/marshallshelly/retail-console/pkg/console"
	"github.com/marshallshelly/retail-console/pkg/logger"
	"github.com/marshallshelly/retail-console/pkg/retail"
	"github.com/marshallshelly/retail-console/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	host    string
	sslMode string
	verbose bool
)

// errUsage marks a wrong number of positional arguments.
var errUsage = errors.New("expected <dbname> <port> <user> [password]")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "retail <dbname> <port> <user> [password]",
	Short: "Retail chain console client",
	Long: `Retail is a menu-driven console client for a retail-chain database.

It connects to PostgreSQL, lets users sign up and log in, and then offers
the menu for their role:
  - customers browse nearby stores, list products and place orders
  - managers also maintain products, request supplies and view statistics
  - admins list and edit every store, user, order and request

Examples:
  retail retaildb 5432 postgres            # connect with an empty password
  retail retaildb 5432 postgres secret     # connect with a password
  retail --host db.local -v retaildb 5432 postgres`,
	Version:       "1.0.0",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&host, "host", "localhost", "Database server host")
	rootCmd.PersistentFlags().StringVar(&sslMode, "sslmode", "prefer", "PostgreSQL sslmode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every statement to stderr")
}

// configFromArgs maps <dbname> <port> <user> [password] onto a store config.
func configFromArgs(args []string) (*store.Config, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, errUsage
	}

	port, err := store.ParsePort(args[1])
	if err != nil {
		return nil, err
	}

	cfg := store.DefaultConfig()
	cfg.Host = host
	cfg.SSLMode = sslMode
	cfg.Database = args[0]
	cfg.Port = port
	cfg.User = args[2]
	cfg.Password = ""
	if len(args) == 4 {
		cfg.Password = args[3]
	}
	return cfg, nil
}

func newLogger() (*zap.Logger, error) {
	cfg := logger.DefaultConfig()
	if verbose {
		cfg = logger.VerboseConfig()
	}
	return logger.New(cfg)
}

// connect opens the gateway, reporting progress on out.
func connect(ctx context.Context, out *console.Printer, cfg *store.Config, log *zap.Logger) (*store.Gateway, error) {
	out.Info("Connecting to database...")
	out.Printf("Connection URL: %s\n\n", cfg.DisplayURL())

	gw, err := store.Connect(ctx, cfg, log)
	if err != nil {
		out.Println("Make sure you started postgres on this machine")
		return nil, err
	}
	out.Println("Done")
	return gw, nil
}

func runConsole(cmd *cobra.Command, args []string) error {
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
	out.Greeting()

	gw, err := connect(ctx, out, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		out.Printf("Disconnecting from database...")
		gw.Close(ctx)
		out.Println("Done\n\nBye !")
	}()

	ctrl := console.NewController(retail.NewService(gw, log), cmd.InOrStdin(), cmd.OutOrStdout(), log)
	return ctrl.Run(ctx)
}
