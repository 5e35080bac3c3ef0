package retail

import (
	"context"
	"fmt"

	"github.com/marshallshelly/retail-console/pkg/store"
)

// PlaceOrder takes the units out of stock and then records the order. The
// two statements commit independently; stock may go negative.
func (s *Service) PlaceOrder(ctx context.Context, sess Session, req OrderRequest) error {
	if !sess.Authenticated() {
		return fmt.Errorf("%w: not logged in", ErrNotPermitted)
	}

	if _, err := s.q.Exec(ctx, sqlDecrementStock, req.Units, req.StoreID, req.ProductName); err != nil {
		return err
	}
	_, err := s.q.Exec(ctx, sqlInsertOrder, sess.UserID, req.StoreID, req.ProductName, req.Units)
	return err
}

// RecentOrders lists a customer's five latest orders, newest first. For
// managers and admins it lists every order of their stores, oldest first,
// without a row limit.
func (s *Service) RecentOrders(ctx context.Context, sess Session) (*store.Result, error) {
	switch sess.Role {
	case RoleCustomer:
		return s.q.Query(ctx, sqlCustomerRecentOrders, sess.UserID)
	case RoleManager, RoleAdmin:
		return s.q.Query(ctx, sqlManagedStoreOrders, sess.UserID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, sess.Role)
	}
}

// PopularCustomers lists the five customers with the most orders across the
// manager's stores.
func (s *Service) PopularCustomers(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleManager); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlPopularCustomers, sess.UserID)
}

// AllOrders lists every order by order number.
func (s *Service) AllOrders(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlAllOrders)
}
