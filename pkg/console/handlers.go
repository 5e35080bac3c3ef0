package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/marshallshelly/retail-console/pkg/retail"
	"github.com/marshallshelly/retail-console/pkg/store"
)

// form reads several prompted fields in order, stopping at the first error.
type form struct {
	p   *Prompter
	err error
}

func (f *form) text(label string) string {
	if f.err != nil {
		return ""
	}
	s, err := f.p.Prompt("\tEnter " + label + ": ")
	f.err = err
	return s
}

func (f *form) integer(label string) int64 {
	s := f.text(label)
	if f.err != nil {
		return 0
	}
	n, err := retail.ParseInt(label, s)
	f.err = err
	return n
}

func (f *form) decimal(label string) float64 {
	s := f.text(label)
	if f.err != nil {
		return 0
	}
	v, err := retail.ParseFloat(label, s)
	f.err = err
	return v
}

func (c *Controller) form() *form {
	return &form{p: c.in}
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (c *Controller) printStores(stores []retail.Store) {
	for i, s := range stores {
		c.out.Printf("%d. \n", i+1)
		c.out.Printf("    Store Name: %s\n", s.Name)
		c.out.Printf("    Store ID: %d\n", s.ID)
		c.out.Printf("    Store latitude: %s\n", formatCoord(s.Latitude))
		c.out.Printf("    Store longitude: %s\n", formatCoord(s.Longitude))
	}
}

func (c *Controller) printResult(res *store.Result, err error) error {
	if err != nil {
		return err
	}
	if res.Print(c.out.Writer()) == 0 {
		c.out.Muted("(no rows)")
	}
	return nil
}

func (c *Controller) createUser(ctx context.Context) error {
	f := c.form()
	u := retail.NewUser{
		Name:      f.text("name"),
		Password:  f.text("password"),
		Latitude:  f.decimal("latitude"),
		Longitude: f.decimal("longitude"),
	}
	if f.err != nil {
		return f.err
	}

	if err := c.svc.CreateUser(ctx, u); err != nil {
		return err
	}
	c.out.Success("User successfully created!")
	return nil
}

func (c *Controller) logIn(ctx context.Context) error {
	f := c.form()
	name := f.text("name")
	password := f.text("password")
	if f.err != nil {
		return f.err
	}

	sess, err := c.svc.LogIn(ctx, name, password)
	if errors.Is(err, retail.ErrInvalidCredentials) {
		c.out.Error("Invalid credentials")
		return nil
	}
	if err != nil {
		return err
	}

	c.session = sess
	c.out.Printf("    User ID: %d\n", sess.UserID)
	c.out.Printf("    User Name: %s\n", sess.Name)
	c.out.Printf("    User Latitude: %s\n", formatCoord(sess.Latitude))
	c.out.Printf("    User Longitude: %s\n", formatCoord(sess.Longitude))
	c.out.Printf("    User Type: %s\n", sess.Role)
	c.out.Success("Welcome, %s", sess.Name)
	return nil
}

func (c *Controller) viewNearbyStores(ctx context.Context) error {
	stores, err := c.svc.NearbyStores(ctx, c.session)
	if err != nil {
		return err
	}

	c.out.Println("Available stores within 30 miles of your location: ")
	if len(stores) == 0 {
		c.out.Warning("There are no stores within a 30 mile radius of your location.")
		return nil
	}
	c.printStores(stores)
	return nil
}

func (c *Controller) viewManagedStores(ctx context.Context) error {
	stores, err := c.svc.ManagedStores(ctx, c.session)
	if err != nil {
		return err
	}
	c.out.Println("Managed stores: ")
	c.printStores(stores)
	return nil
}

func (c *Controller) viewAllStores(ctx context.Context) error {
	stores, err := c.svc.AllStores(ctx, c.session)
	if err != nil {
		return err
	}
	c.out.Println("All stores: ")
	c.printStores(stores)
	return nil
}

func (c *Controller) viewProducts(ctx context.Context) error {
	f := c.form()
	storeID := f.integer("store ID")
	if f.err != nil {
		return f.err
	}

	c.out.Printf("Available products in %d: \n", storeID)
	return c.printResult(c.svc.Products(ctx, storeID))
}

func (c *Controller) placeOrder(ctx context.Context) error {
	f := c.form()
	req := retail.OrderRequest{
		StoreID:     f.integer("store ID"),
		ProductName: f.text("product name"),
		Units:       f.integer("number of units"),
	}
	if f.err != nil {
		return f.err
	}

	if err := c.svc.PlaceOrder(ctx, c.session, req); err != nil {
		return err
	}
	c.out.Success("Order placed.")
	return nil
}

func (c *Controller) viewRecentOrders(ctx context.Context) error {
	return c.printResult(c.svc.RecentOrders(ctx, c.session))
}

func (c *Controller) updateProduct(ctx context.Context) error {
	f := c.form()
	change := retail.ProductChange{
		StoreID:     f.integer("store ID"),
		ProductName: f.text("product"),
		Units:       f.integer("new number of units"),
		Price:       f.integer("new price per unit"),
	}
	if f.err != nil {
		return f.err
	}

	n, err := c.svc.UpdateProduct(ctx, c.session, change)
	if err != nil {
		return err
	}
	if n == 0 {
		c.out.Warning("No matching product in a store you manage; the update was logged anyway.")
		return nil
	}
	c.out.Success("Item updated.")
	return nil
}

func (c *Controller) viewRecentUpdates(ctx context.Context) error {
	return c.printResult(c.svc.RecentUpdates(ctx, c.session))
}

func (c *Controller) viewPopularProducts(ctx context.Context) error {
	return c.printResult(c.svc.PopularProducts(ctx, c.session))
}

func (c *Controller) viewPopularCustomers(ctx context.Context) error {
	return c.printResult(c.svc.PopularCustomers(ctx, c.session))
}

func (c *Controller) placeSupplyRequest(ctx context.Context) error {
	f := c.form()
	req := retail.SupplyRequest{
		StoreID:     f.integer("store ID"),
		ProductName: f.text("product name"),
		Units:       f.integer("number of units"),
		WarehouseID: f.integer("warehouse ID"),
	}
	if f.err != nil {
		return f.err
	}

	if err := c.svc.PlaceSupplyRequest(ctx, c.session, req); err != nil {
		return err
	}
	c.out.Success("Product supply request placed.")
	return nil
}

func (c *Controller) viewAllCustomers(ctx context.Context) error {
	return c.printResult(c.svc.AllCustomers(ctx, c.session))
}

func (c *Controller) viewAllOrders(ctx context.Context) error {
	return c.printResult(c.svc.AllOrders(ctx, c.session))
}

func (c *Controller) updateProductAdmin(ctx context.Context) error {
	f := c.form()
	change := retail.ProductRename{
		StoreID:     f.integer("store ID"),
		ProductName: f.text("product"),
		NewName:     f.text("new product name"),
		Units:       f.integer("new number of units"),
		Price:       f.integer("new price per unit"),
	}
	if f.err != nil {
		return f.err
	}

	n, err := c.svc.UpdateProductAdmin(ctx, c.session, change)
	if err != nil {
		return err
	}
	if n == 0 {
		c.out.Warning("No product %q in store %d; the update was logged anyway.", change.ProductName, change.StoreID)
		return nil
	}
	c.out.Success("Item updated.")
	return nil
}

func (c *Controller) updateUser(ctx context.Context) error {
	f := c.form()
	change := retail.UserChange{
		UserID:    f.integer("user ID"),
		Name:      f.text("new name"),
		Password:  f.text("new password"),
		Latitude:  f.decimal("new latitude"),
		Longitude: f.decimal("new longitude"),
		Role:      f.text("new user type"),
	}
	if f.err != nil {
		return f.err
	}

	n, err := c.svc.UpdateUser(ctx, c.session, change)
	if err != nil {
		return err
	}
	if n == 0 {
		c.out.Warning("No user with ID %d.", change.UserID)
		return nil
	}
	c.out.Success("User updated.")
	return nil
}

func (c *Controller) deleteUser(ctx context.Context) error {
	f := c.form()
	userID := f.integer("user ID")
	if f.err != nil {
		return f.err
	}

	n, err := c.svc.DeleteUser(ctx, c.session, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		c.out.Warning("No user with ID %d.", userID)
		return nil
	}
	c.out.Success("User deleted.")
	return nil
}

func (c *Controller) viewAllUpdates(ctx context.Context) error {
	return c.printResult(c.svc.AllUpdates(ctx, c.session))
}

func (c *Controller) viewAllSupplyRequests(ctx context.Context) error {
	return c.printResult(c.svc.AllSupplyRequests(ctx, c.session))
}
