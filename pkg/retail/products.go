package retail

import (
	"context"

	"github.com/marshallshelly/retail-console/pkg/store"
)

// Products lists name, units and price of every product in a store.
func (s *Service) Products(ctx context.Context, storeID int64) (*store.Result, error) {
	return s.q.Query(ctx, sqlStoreProducts, storeID)
}

// UpdateProduct sets stock and price of a product in one of the manager's
// stores and returns the number of rows changed. The audit row is written
// even when nothing matched.
func (s *Service) UpdateProduct(ctx context.Context, sess Session, c ProductChange) (int64, error) {
	if err := requireRole(sess, RoleManager); err != nil {
		return 0, err
	}

	n, err := s.q.Exec(ctx, sqlManagerUpdateProduct, c.Units, c.Price, c.ProductName, c.StoreID, sess.UserID)
	if err != nil {
		return 0, err
	}
	if _, err := s.q.Exec(ctx, sqlInsertProductUpdate, sess.UserID, c.StoreID, c.ProductName); err != nil {
		return n, err
	}
	return n, nil
}

// UpdateProductAdmin records the audit row under the old product name, then
// renames and reprices the product in any store.
func (s *Service) UpdateProductAdmin(ctx context.Context, sess Session, c ProductRename) (int64, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return 0, err
	}

	if _, err := s.q.Exec(ctx, sqlInsertProductUpdate, sess.UserID, c.StoreID, c.ProductName); err != nil {
		return 0, err
	}
	return s.q.Exec(ctx, sqlAdminUpdateProduct, c.NewName, c.Units, c.Price, c.ProductName, c.StoreID)
}

// RecentUpdates lists the five latest product updates across the manager's
// stores, newest first.
func (s *Service) RecentUpdates(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleManager); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlManagedRecentUpdates, sess.UserID)
}

// PopularProducts lists the five products with the most units ordered
// across the manager's stores.
func (s *Service) PopularProducts(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleManager); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlPopularProducts, sess.UserID)
}

// PlaceSupplyRequest records the request and restocks immediately.
func (s *Service) PlaceSupplyRequest(ctx context.Context, sess Session, r SupplyRequest) error {
	if err := requireRole(sess, RoleManager); err != nil {
		return err
	}

	if _, err := s.q.Exec(ctx, sqlInsertSupplyRequest, sess.UserID, r.WarehouseID, r.StoreID, r.ProductName, r.Units); err != nil {
		return err
	}
	_, err := s.q.Exec(ctx, sqlIncrementStock, r.Units, r.StoreID, r.ProductName)
	return err
}

// AllUpdates lists every product update, oldest first.
func (s *Service) AllUpdates(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlAllUpdates)
}

// AllSupplyRequests lists every supply request by request number.
func (s *Service) AllSupplyRequests(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlAllSupplyRequests)
}
