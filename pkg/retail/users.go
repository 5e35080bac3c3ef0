package retail

import (
	"context"

	"github.com/marshallshelly/retail-console/pkg/store"
)

// AllCustomers lists customers and managers by user id.
func (s *Service) AllCustomers(ctx context.Context, sess Session) (*store.Result, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return nil, err
	}
	return s.q.Query(ctx, sqlAllCustomers, string(RoleCustomer), string(RoleManager))
}

// UpdateUser overwrites every field of a user and returns the rows changed.
func (s *Service) UpdateUser(ctx context.Context, sess Session, c UserChange) (int64, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return 0, err
	}
	return s.q.Exec(ctx, sqlUpdateUser, c.Name, c.Password, c.Latitude, c.Longitude, c.Role, c.UserID)
}

// DeleteUser removes a user. Dependent rows are left to the backend's
// referential constraints, which may reject the delete.
func (s *Service) DeleteUser(ctx context.Context, sess Session, userID int64) (int64, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return 0, err
	}
	return s.q.Exec(ctx, sqlDeleteUser, userID)
}
