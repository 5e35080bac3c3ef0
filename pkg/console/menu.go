package console

import (
	"context"
	"strings"

	"github.com/marshallshelly/retail-console/pkg/retail"
)

const (
	choiceExit   = 9
	choiceLogout = 20
)

type menuItem struct {
	choice int
	label  string
	run    func(ctx context.Context) error
}

type menu struct {
	title  string
	items  []menuItem
	footer []menuItem
}

func (m menu) find(choice int) (menuItem, bool) {
	for _, it := range m.items {
		if it.choice == choice {
			return it, true
		}
	}
	for _, it := range m.footer {
		if it.choice == choice {
			return it, true
		}
	}
	return menuItem{}, false
}

func (m menu) render(out *Printer) {
	out.Section(m.title)
	for _, it := range m.items {
		out.Printf("%d. %s\n", it.choice, it.label)
	}
	if len(m.footer) > 0 {
		out.Println(strings.Repeat(".", 25))
		for _, it := range m.footer {
			out.Printf("%d. %s\n", it.choice, it.label)
		}
	}
}

// menuFor selects the menu for a role; the empty role is the anonymous menu.
func (c *Controller) menuFor(role retail.Role) menu {
	switch role {
	case retail.RoleCustomer:
		return c.customerMenu()
	case retail.RoleManager:
		return c.managerMenu()
	case retail.RoleAdmin:
		return c.adminMenu()
	default:
		return c.anonymousMenu()
	}
}

func (c *Controller) anonymousMenu() menu {
	return menu{
		title: "MAIN MENU",
		items: []menuItem{
			{1, "Create user", c.createUser},
			{2, "Log in", c.logIn},
			{choiceExit, "< EXIT", c.exit},
		},
	}
}

func (c *Controller) customerMenu() menu {
	return menu{
		title: "MAIN MENU",
		items: []menuItem{
			{1, "View Stores Within 30 Miles", c.viewNearbyStores},
			{2, "View Product List", c.viewProducts},
			{3, "Place an Order", c.placeOrder},
			{4, "View 5 Recent Orders", c.viewRecentOrders},
		},
		footer: []menuItem{{choiceLogout, "Log out", c.logOut}},
	}
}

func (c *Controller) managerMenu() menu {
	m := c.customerMenu()
	m.items = append(m.items,
		menuItem{5, "View Managed Stores", c.viewManagedStores},
		menuItem{6, "Update Product", c.updateProduct},
		menuItem{7, "View 5 Recent Product Updates Info", c.viewRecentUpdates},
		menuItem{8, "View 5 Popular Items", c.viewPopularProducts},
		menuItem{9, "View 5 Popular Customers", c.viewPopularCustomers},
		menuItem{10, "Place Product Supply Request to Warehouse", c.placeSupplyRequest},
	)
	return m
}

func (c *Controller) adminMenu() menu {
	return menu{
		title: "MAIN MENU",
		items: []menuItem{
			{1, "View All Stores", c.viewAllStores},
			{2, "View All Customers", c.viewAllCustomers},
			{3, "View Product List", c.viewProducts},
			{4, "Place an Order", c.placeOrder},
			{5, "View All Recent Orders", c.viewAllOrders},
			{6, "Update Product", c.updateProductAdmin},
			{7, "Update User", c.updateUser},
			{8, "Delete User", c.deleteUser},
			{9, "View All Recent Product Updates Info", c.viewAllUpdates},
			{10, "View All Recent Product Supply Requests Info", c.viewAllSupplyRequests},
		},
		footer: []menuItem{{choiceLogout, "Log out", c.logOut}},
	}
}
