// Package retail implements the retail-chain operations: signup and login,
// store discovery, ordering, product maintenance and the admin listings.
//
// Every operation is one or more auto-committed statements issued through a
// Querier; the caller's Session decides whose data is touched.
package retail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/marshallshelly/retail-console/pkg/store"
	"go.uber.org/zap"
)

// Querier executes statements against the backing store. *store.Gateway
// satisfies it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
	Query(ctx context.Context, sql string, args ...any) (*store.Result, error)
}

// Service runs the retail operations.
type Service struct {
	q      Querier
	logger *zap.Logger
	newID  func() uuid.UUID
}

// NewService creates a service over q.
func NewService(q Querier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{q: q, logger: logger, newID: uuid.New}
}

// CreateUser signs up a new customer. Names are not required to be unique.
func (s *Service) CreateUser(ctx context.Context, u NewUser) error {
	_, err := s.q.Exec(ctx, sqlCreateUser, u.Name, u.Password, u.Latitude, u.Longitude, string(RoleCustomer))
	return err
}

// LogIn looks up the user by exact name and password. The first matching
// row wins.
func (s *Service) LogIn(ctx context.Context, name, password string) (Session, error) {
	res, err := s.q.Query(ctx, sqlLogIn, name, password)
	if err != nil {
		return Session{}, err
	}
	if res.Len() == 0 {
		return Session{}, ErrInvalidCredentials
	}

	user, err := decodeUser(res.Rows[0])
	if err != nil {
		return Session{}, err
	}
	role, err := ParseRole(user.Role)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		ID:        s.newID(),
		UserID:    user.ID,
		Name:      user.Name,
		Role:      role,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
	}
	s.logger.Info("logged in",
		zap.Stringer("session", sess.ID),
		zap.Int64("user_id", sess.UserID),
		zap.Stringer("role", sess.Role))
	return sess, nil
}

func requireRole(sess Session, allowed ...Role) error {
	for _, r := range allowed {
		if sess.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotPermitted, sess.Role)
}

func (s *Service) stores(ctx context.Context, sql string, args ...any) ([]Store, error) {
	res, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	stores := make([]Store, 0, res.Len())
	for _, row := range res.Rows {
		st, err := decodeStore(row)
		if err != nil {
			return nil, err
		}
		stores = append(stores, st)
	}
	return stores, nil
}
