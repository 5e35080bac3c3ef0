package store

import (
	"context"
	"fmt"
)

// schemaStatements creates the retail tables. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		userID SERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		password VARCHAR(11) NOT NULL,
		latitude DECIMAL(8,6) NOT NULL,
		longitude DECIMAL(9,6) NOT NULL,
		type VARCHAR(8) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS store (
		storeID SERIAL PRIMARY KEY,
		name VARCHAR(30) NOT NULL,
		latitude DECIMAL(8,6) NOT NULL,
		longitude DECIMAL(9,6) NOT NULL,
		managerID INTEGER NOT NULL REFERENCES users(userID),
		dateEstablished DATE NOT NULL DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE IF NOT EXISTS product (
		storeID INTEGER NOT NULL REFERENCES store(storeID),
		productName VARCHAR(30) NOT NULL,
		numberOfUnits INTEGER NOT NULL,
		pricePerUnit INTEGER NOT NULL,
		PRIMARY KEY (storeID, productName)
	)`,
	`CREATE TABLE IF NOT EXISTS warehouse (
		warehouseID SERIAL PRIMARY KEY,
		area DECIMAL(10,2) NOT NULL,
		latitude DECIMAL(8,6) NOT NULL,
		longitude DECIMAL(9,6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		orderNumber SERIAL PRIMARY KEY,
		customerID INTEGER NOT NULL REFERENCES users(userID),
		storeID INTEGER NOT NULL REFERENCES store(storeID),
		productName VARCHAR(30) NOT NULL,
		unitsOrdered INTEGER NOT NULL,
		orderTime TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS productSupplyRequests (
		requestNumber SERIAL PRIMARY KEY,
		managerID INTEGER NOT NULL REFERENCES users(userID),
		warehouseID INTEGER NOT NULL REFERENCES warehouse(warehouseID),
		storeID INTEGER NOT NULL REFERENCES store(storeID),
		productName VARCHAR(30) NOT NULL,
		unitsRequested INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS productUpdates (
		updateNumber SERIAL PRIMARY KEY,
		managerID INTEGER NOT NULL REFERENCES users(userID),
		storeID INTEGER NOT NULL REFERENCES store(storeID),
		productName VARCHAR(30) NOT NULL,
		updatedOn TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

// Bootstrap creates any missing retail tables.
func (g *Gateway) Bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := g.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
