package retail

import (
	"fmt"
	"strings"
)

// User mirrors the users table, minus the password.
type User struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	Role      string
}

// Store mirrors the store table.
type Store struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	ManagerID int64
}

// NewUser holds the fields for self-service signup.
type NewUser struct {
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
}

// UserChange overwrites every field of an existing user. Role is taken as
// typed; it is not checked against the known roles.
type UserChange struct {
	UserID    int64
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
	Role      string
}

// OrderRequest places an order against a store's product.
type OrderRequest struct {
	StoreID     int64
	ProductName string
	Units       int64
}

// ProductChange sets the stock and price of a product.
type ProductChange struct {
	StoreID     int64
	ProductName string
	Units       int64
	Price       int64
}

// ProductRename is the admin form of ProductChange that may also rename.
type ProductRename struct {
	StoreID     int64
	ProductName string
	NewName     string
	Units       int64
	Price       int64
}

// SupplyRequest restocks a product from a warehouse.
type SupplyRequest struct {
	StoreID     int64
	ProductName string
	Units       int64
	WarehouseID int64
}

// decodeUser reads a row laid out as userID, name, latitude, longitude, type.
func decodeUser(row []string) (User, error) {
	if len(row) < 5 {
		return User{}, fmt.Errorf("user row has %d columns, want 5", len(row))
	}

	id, err := ParseInt("user id", row[0])
	if err != nil {
		return User{}, err
	}
	lat, err := ParseFloat("latitude", row[2])
	if err != nil {
		return User{}, err
	}
	lon, err := ParseFloat("longitude", row[3])
	if err != nil {
		return User{}, err
	}

	return User{
		ID:        id,
		Name:      strings.TrimSpace(row[1]),
		Latitude:  lat,
		Longitude: lon,
		Role:      strings.TrimSpace(row[4]),
	}, nil
}

// decodeStore reads a row laid out as storeID, name, latitude, longitude, managerID.
func decodeStore(row []string) (Store, error) {
	if len(row) < 5 {
		return Store{}, fmt.Errorf("store row has %d columns, want 5", len(row))
	}

	id, err := ParseInt("store id", row[0])
	if err != nil {
		return Store{}, err
	}
	lat, err := ParseFloat("latitude", row[2])
	if err != nil {
		return Store{}, err
	}
	lon, err := ParseFloat("longitude", row[3])
	if err != nil {
		return Store{}, err
	}
	managerID, err := ParseInt("manager id", row[4])
	if err != nil {
		return Store{}, err
	}

	return Store{
		ID:        id,
		Name:      strings.TrimSpace(row[1]),
		Latitude:  lat,
		Longitude: lon,
		ManagerID: managerID,
	}, nil
}
