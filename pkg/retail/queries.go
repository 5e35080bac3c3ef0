package retail

// Statements issued by the service. Values are always bound, never spliced.
const (
	sqlCreateUser = `INSERT INTO users (name, password, latitude, longitude, type) VALUES ($1, $2, $3, $4, $5)`
	sqlLogIn      = `SELECT userID, name, latitude, longitude, type FROM users WHERE name = $1 AND password = $2`

	sqlAllStores     = `SELECT storeID, name, latitude, longitude, managerID FROM store ORDER BY storeID`
	sqlManagedStores = `SELECT storeID, name, latitude, longitude, managerID FROM store WHERE managerID = $1 ORDER BY storeID`

	sqlStoreProducts = `SELECT p.productName, p.numberOfUnits, p.pricePerUnit
		FROM store s JOIN product p ON s.storeID = p.storeID
		WHERE s.storeID = $1`

	sqlDecrementStock = `UPDATE product SET numberOfUnits = numberOfUnits - $1 WHERE storeID = $2 AND productName = $3`
	sqlIncrementStock = `UPDATE product SET numberOfUnits = numberOfUnits + $1 WHERE storeID = $2 AND productName = $3`
	sqlInsertOrder    = `INSERT INTO orders (customerID, storeID, productName, unitsOrdered) VALUES ($1, $2, $3, $4)`

	sqlCustomerRecentOrders = `SELECT * FROM orders WHERE customerID = $1 ORDER BY orderNumber DESC LIMIT 5`
	sqlManagedStoreOrders   = `SELECT o.orderNumber, o.customerID, o.storeID, o.productName, o.unitsOrdered, o.orderTime, s.name AS storeName
		FROM orders o JOIN store s ON o.storeID = s.storeID
		WHERE s.managerID = $1
		ORDER BY o.orderNumber`

	sqlManagerUpdateProduct = `UPDATE product SET numberOfUnits = $1, pricePerUnit = $2
		WHERE productName = $3 AND storeID = $4
		AND storeID IN (SELECT s.storeID FROM store s WHERE s.managerID = $5)`
	sqlAdminUpdateProduct = `UPDATE product SET productName = $1, numberOfUnits = $2, pricePerUnit = $3
		WHERE productName = $4 AND storeID = $5`
	sqlInsertProductUpdate = `INSERT INTO productUpdates (managerID, storeID, productName, updatedOn) VALUES ($1, $2, $3, now())`

	sqlManagedRecentUpdates = `SELECT p.* FROM productUpdates p JOIN store s ON p.storeID = s.storeID
		WHERE s.managerID = $1
		ORDER BY p.updatedOn DESC LIMIT 5`
	sqlPopularProducts = `SELECT o.productName, SUM(o.unitsOrdered) AS numberOfOrders
		FROM store s JOIN orders o ON s.storeID = o.storeID
		WHERE s.managerID = $1
		GROUP BY o.productName
		ORDER BY SUM(o.unitsOrdered) DESC LIMIT 5`
	sqlPopularCustomers = `SELECT u.name, o.customerID, COUNT(*) AS numberOfOrders
		FROM store s JOIN orders o ON s.storeID = o.storeID JOIN users u ON o.customerID = u.userID
		WHERE s.managerID = $1
		GROUP BY u.name, o.customerID
		ORDER BY COUNT(*) DESC LIMIT 5`

	sqlInsertSupplyRequest = `INSERT INTO productSupplyRequests (managerID, warehouseID, storeID, productName, unitsRequested) VALUES ($1, $2, $3, $4, $5)`

	sqlAllCustomers      = `SELECT userID, name, latitude, longitude, type FROM users WHERE type = $1 OR type = $2 ORDER BY userID`
	sqlAllOrders         = `SELECT * FROM orders ORDER BY orderNumber`
	sqlAllUpdates        = `SELECT * FROM productUpdates ORDER BY updatedOn, updateNumber`
	sqlAllSupplyRequests = `SELECT * FROM productSupplyRequests ORDER BY requestNumber`

	sqlUpdateUser = `UPDATE users SET name = $1, password = $2, latitude = $3, longitude = $4, type = $5 WHERE userID = $6`
	sqlDeleteUser = `DELETE FROM users WHERE userID = $1`
)
