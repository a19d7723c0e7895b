package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Tests are skipped when
// no MySQL instance named 'smartmart_test' is reachable on localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/smartmart_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB deletes all rows, children before parents.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"INVOICE_DETAIL", "INVOICE",
		"DISPLAYS", "INVENTORY",
		"FOOD_ITEM", "PRODUCT",
		"COUNTER", "CATEGORY",
	}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema the engine runs against.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCategoryTable := `
	CREATE TABLE IF NOT EXISTS CATEGORY (
		CategoryID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		CategoryName VARCHAR(100) NOT NULL
	)`

	createProductTable := `
	CREATE TABLE IF NOT EXISTS PRODUCT (
		ProductID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		ProductName VARCHAR(255) NOT NULL,
		Unit VARCHAR(50) NOT NULL,
		ImportPrice DECIMAL(12,2) NOT NULL,
		SellingPrice DECIMAL(12,2) NOT NULL,
		CategoryID INT NOT NULL,
		CreatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UpdatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (CategoryID) REFERENCES CATEGORY(CategoryID),
		INDEX idx_category (CategoryID)
	)`

	createFoodItemTable := `
	CREATE TABLE IF NOT EXISTS FOOD_ITEM (
		ProductID INT NOT NULL PRIMARY KEY,
		ExpiryDays INT NOT NULL,
		SafetyThreshold INT,
		FOREIGN KEY (ProductID) REFERENCES PRODUCT(ProductID) ON DELETE CASCADE
	)`

	createCounterTable := `
	CREATE TABLE IF NOT EXISTS COUNTER (
		CounterID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		CounterName VARCHAR(100) NOT NULL,
		CategoryID INT,
		FOREIGN KEY (CategoryID) REFERENCES CATEGORY(CategoryID)
	)`

	createInventoryTable := `
	CREATE TABLE IF NOT EXISTS INVENTORY (
		InventoryID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		ProductID INT NOT NULL,
		Quantity INT NOT NULL DEFAULT 0,
		ImportDate DATETIME NOT NULL,
		FOREIGN KEY (ProductID) REFERENCES PRODUCT(ProductID),
		INDEX idx_product (ProductID),
		INDEX idx_import_date (ImportDate)
	)`

	createDisplaysTable := `
	CREATE TABLE IF NOT EXISTS DISPLAYS (
		DisplayID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		InventoryID INT NOT NULL,
		CounterID INT NOT NULL,
		Position VARCHAR(20) NOT NULL,
		MaxQuantity INT NOT NULL,
		CurrentQuantity INT NOT NULL DEFAULT 0,
		FOREIGN KEY (InventoryID) REFERENCES INVENTORY(InventoryID),
		FOREIGN KEY (CounterID) REFERENCES COUNTER(CounterID),
		UNIQUE KEY uniq_slot (InventoryID, CounterID, Position),
		INDEX idx_counter (CounterID)
	)`

	createInvoiceTable := `
	CREATE TABLE IF NOT EXISTS INVOICE (
		InvoiceID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		CustomerID INT,
		EmployeeID INT,
		PaymentMethod VARCHAR(20) NOT NULL,
		TotalAmount DECIMAL(12,2) NOT NULL,
		CreatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createInvoiceDetailTable := `
	CREATE TABLE IF NOT EXISTS INVOICE_DETAIL (
		InvoiceDetailID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		InvoiceID INT NOT NULL,
		ProductID INT NOT NULL,
		Quantity INT NOT NULL,
		SellingPrice DECIMAL(12,2) NOT NULL,
		FOREIGN KEY (InvoiceID) REFERENCES INVOICE(InvoiceID) ON DELETE CASCADE,
		FOREIGN KEY (ProductID) REFERENCES PRODUCT(ProductID),
		INDEX idx_invoice (InvoiceID)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"CATEGORY", createCategoryTable},
		{"PRODUCT", createProductTable},
		{"FOOD_ITEM", createFoodItemTable},
		{"COUNTER", createCounterTable},
		{"INVENTORY", createInventoryTable},
		{"DISPLAYS", createDisplaysTable},
		{"INVOICE", createInvoiceTable},
		{"INVOICE_DETAIL", createInvoiceDetailTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// SeedCategory inserts a category and returns its id.
func SeedCategory(t *testing.T, db *sql.DB, name string) int {
	result, err := db.Exec(`INSERT INTO CATEGORY (CategoryName) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("seeding category: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedCounter inserts a counter and returns its id.
func SeedCounter(t *testing.T, db *sql.DB, name string, categoryID int) int {
	result, err := db.Exec(`INSERT INTO COUNTER (CounterName, CategoryID) VALUES (?, ?)`, name, categoryID)
	if err != nil {
		t.Fatalf("seeding counter: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedProduct inserts a product; expiryDays and safetyThreshold being nil
// makes it non-perishable.
func SeedProduct(t *testing.T, db *sql.DB, name string, categoryID int, expiryDays, safetyThreshold *int) int {
	result, err := db.Exec(`
		INSERT INTO PRODUCT (ProductName, Unit, ImportPrice, SellingPrice, CategoryID)
		VALUES (?, 'unit', 10.00, 15.00, ?)`, name, categoryID)
	if err != nil {
		t.Fatalf("seeding product: %v", err)
	}
	id, _ := result.LastInsertId()

	if expiryDays != nil {
		_, err := db.Exec(`INSERT INTO FOOD_ITEM (ProductID, ExpiryDays, SafetyThreshold) VALUES (?, ?, ?)`,
			id, expiryDays, safetyThreshold)
		if err != nil {
			t.Fatalf("seeding food item: %v", err)
		}
	}

	return int(id)
}

// SeedLot inserts a warehouse lot and returns its id.
func SeedLot(t *testing.T, db *sql.DB, productID, quantity int) int {
	result, err := db.Exec(`INSERT INTO INVENTORY (ProductID, Quantity, ImportDate) VALUES (?, ?, NOW())`,
		productID, quantity)
	if err != nil {
		t.Fatalf("seeding lot: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedDisplay inserts a display slot and returns its id.
func SeedDisplay(t *testing.T, db *sql.DB, lotID, counterID int, position string, maxQty, currentQty int) int {
	result, err := db.Exec(`
		INSERT INTO DISPLAYS (InventoryID, CounterID, Position, MaxQuantity, CurrentQuantity)
		VALUES (?, ?, ?, ?, ?)`, lotID, counterID, position, maxQty, currentQty)
	if err != nil {
		t.Fatalf("seeding display: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}
