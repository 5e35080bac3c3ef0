package retail

import "context"

// NearbyStores returns the stores within NearbyRadius of the session user.
func (s *Service) NearbyStores(ctx context.Context, sess Session) ([]Store, error) {
	all, err := s.stores(ctx, sqlAllStores)
	if err != nil {
		return nil, err
	}
	return WithinRadius(all, sess.Latitude, sess.Longitude, NearbyRadius), nil
}

// ManagedStores returns the stores the session manager runs.
func (s *Service) ManagedStores(ctx context.Context, sess Session) ([]Store, error) {
	if err := requireRole(sess, RoleManager); err != nil {
		return nil, err
	}
	return s.stores(ctx, sqlManagedStores, sess.UserID)
}

// AllStores lists every store.
func (s *Service) AllStores(ctx context.Context, sess Session) ([]Store, error) {
	if err := requireRole(sess, RoleAdmin); err != nil {
		return nil, err
	}
	return s.stores(ctx, sqlAllStores)
}
