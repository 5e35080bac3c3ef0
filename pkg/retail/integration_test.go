//go:build integration
// +build integration

package retail_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/marshallshelly/retail-console/pkg/retail"
	"github.com/marshallshelly/retail-console/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupGateway starts PostgreSQL, connects a gateway and creates the schema.
func setupGateway(t *testing.T) *store.Gateway {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("retail"),
		postgres.WithUsername("retail"),
		postgres.WithPassword("retail"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	mapped, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := &store.Config{
		Host:     host,
		Port:     mapped.Int(),
		Database: "retail",
		User:     "retail",
		Password: "retail",
		SSLMode:  "disable",
	}
	gw, err := store.Connect(ctx, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close(ctx) })

	require.NoError(t, gw.Bootstrap(ctx))
	// Bootstrapping twice must be harmless.
	require.NoError(t, gw.Bootstrap(ctx))
	return gw
}

func mustExec(t *testing.T, gw *store.Gateway, sql string, args ...any) {
	t.Helper()
	_, err := gw.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func scalar(t *testing.T, gw *store.Gateway, sql string, args ...any) string {
	t.Helper()
	res, err := gw.Query(context.Background(), sql, args...)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	return res.Rows[0][0]
}

func TestIntegration_RetailFlow(t *testing.T) {
	gw := setupGateway(t)
	ctx := context.Background()
	svc := retail.NewService(gw, nil)

	// Signup and login.
	require.NoError(t, svc.CreateUser(ctx, retail.NewUser{Name: "alice", Password: "pw1", Latitude: 10, Longitude: 10}))
	alice, err := svc.LogIn(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, retail.RoleCustomer, alice.Role)
	assert.Equal(t, 10.0, alice.Latitude)
	assert.Equal(t, 10.0, alice.Longitude)

	_, err = svc.LogIn(ctx, "alice", "nope")
	assert.ErrorIs(t, err, retail.ErrInvalidCredentials)

	// Seed a manager, two stores and a product.
	mustExec(t, gw, `INSERT INTO users (name, password, latitude, longitude, type) VALUES ('mgr', 'pw', 0, 0, 'manager')`)
	mgr, err := svc.LogIn(ctx, "mgr", "pw")
	require.NoError(t, err)
	mustExec(t, gw, `INSERT INTO store (name, latitude, longitude, managerID) VALUES ('Corner', 39.9, 10, $1)`, mgr.UserID)
	mustExec(t, gw, `INSERT INTO store (name, latitude, longitude, managerID) VALUES ('Outskirts', 40.1, 10, $1)`, mgr.UserID)
	mustExec(t, gw, `INSERT INTO warehouse (area, latitude, longitude) VALUES (100, 0, 0)`)
	corner := scalar(t, gw, `SELECT storeID FROM store WHERE name = 'Corner'`)
	cornerID, err := strconv.ParseInt(corner, 10, 64)
	require.NoError(t, err)
	mustExec(t, gw, `INSERT INTO product (storeID, productName, numberOfUnits, pricePerUnit) VALUES ($1, 'Milk', 3, 2)`, cornerID)

	nearby, err := svc.NearbyStores(ctx, alice)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "Corner", nearby[0].Name)

	// Ordering more than is in stock drives the count negative.
	require.NoError(t, svc.PlaceOrder(ctx, alice, retail.OrderRequest{StoreID: cornerID, ProductName: "Milk", Units: 5}))
	assert.Equal(t, "-2", scalar(t, gw, `SELECT numberOfUnits FROM product WHERE storeID = $1 AND productName = 'Milk'`, cornerID))
	assert.Equal(t, "5", scalar(t, gw, `SELECT unitsOrdered FROM orders WHERE customerID = $1`, alice.UserID))

	recent, err := svc.RecentOrders(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 1, recent.Len())

	// Supply request restocks immediately.
	require.NoError(t, svc.PlaceSupplyRequest(ctx, mgr, retail.SupplyRequest{StoreID: cornerID, ProductName: "Milk", Units: 10, WarehouseID: 1}))
	assert.Equal(t, "8", scalar(t, gw, `SELECT numberOfUnits FROM product WHERE storeID = $1 AND productName = 'Milk'`, cornerID))

	// An update against a store the manager does not run changes nothing
	// but is still audited.
	mustExec(t, gw, `INSERT INTO users (name, password, latitude, longitude, type) VALUES ('other', 'pw', 0, 0, 'manager')`)
	other, err := svc.LogIn(ctx, "other", "pw")
	require.NoError(t, err)
	n, err := svc.UpdateProduct(ctx, other, retail.ProductChange{StoreID: cornerID, ProductName: "Milk", Units: 100, Price: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, "1", scalar(t, gw, `SELECT COUNT(*) FROM productUpdates WHERE managerID = $1`, other.UserID))

	n, err = svc.UpdateProduct(ctx, mgr, retail.ProductChange{StoreID: cornerID, ProductName: "Milk", Units: 50, Price: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	popular, err := svc.PopularProducts(ctx, mgr)
	require.NoError(t, err)
	require.Equal(t, 1, popular.Len())
	assert.Equal(t, []string{"Milk", "5"}, popular.Rows[0])

	// Deleting a user referenced by orders is rejected by the backend.
	root := retail.Session{UserID: mgr.UserID, Role: retail.RoleAdmin}
	_, err = svc.DeleteUser(ctx, root, alice.UserID)
	var stmtErr *store.StatementError
	assert.ErrorAs(t, err, &stmtErr)
}

func TestIntegration_QueryRendersNullAsText(t *testing.T) {
	gw := setupGateway(t)

	res, err := gw.Query(context.Background(), `SELECT NULL::text AS missing, 1.50::numeric AS price, 'x' AS label`)
	require.NoError(t, err)
	assert.Equal(t, []string{"missing", "price", "label"}, res.Columns)
	assert.Equal(t, [][]string{{store.NullText, "1.50", "x"}}, res.Rows)
}
