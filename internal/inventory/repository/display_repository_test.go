package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/testutil"
)

type displayFixture struct {
	db        *sql.DB
	repo      *MySQLDisplayRepository
	productID int
	lotID     int
	counterID int
}

func setupDisplayFixture(t *testing.T) *displayFixture {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	categoryID := testutil.SeedCategory(t, db, "Snacks")
	counterID := testutil.SeedCounter(t, db, "Snack Counter", categoryID)
	productID := testutil.SeedProduct(t, db, "Crisps", categoryID, nil, nil)
	lotID := testutil.SeedLot(t, db, productID, 200)

	return &displayFixture{
		db:        db,
		repo:      NewMySQLDisplayRepository(db),
		productID: productID,
		lotID:     lotID,
		counterID: counterID,
	}
}

func TestDisplayRepository_FindSlotForUpdate(t *testing.T) {
	f := setupDisplayFixture(t)
	displayID := testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A1", 30, 12)

	tx, err := f.db.BeginTx(context.Background(), &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	require.NoError(t, err)
	defer tx.Rollback()

	display, err := f.repo.FindSlotForUpdate(context.Background(), tx, f.lotID, f.counterID, "A1")
	require.NoError(t, err)
	assert.Equal(t, displayID, display.ID)
	assert.Equal(t, 12, display.CurrentQuantity)
	assert.Equal(t, 18, display.FreeCapacity())

	_, err = f.repo.FindSlotForUpdate(context.Background(), tx, f.lotID, f.counterID, "Z9")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestDisplayRepository_DecrementClampsAtZero(t *testing.T) {
	f := setupDisplayFixture(t)
	displayID := testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A1", 30, 5)

	tx, err := f.db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	// Removing more than present empties the display instead of going
	// negative.
	require.NoError(t, f.repo.Decrement(context.Background(), tx, displayID, 8))
	require.NoError(t, tx.Commit())

	display, err := f.repo.FindByID(context.Background(), displayID)
	require.NoError(t, err)
	assert.Equal(t, 0, display.CurrentQuantity)
}

func TestDisplayRepository_ListForProduct_FullestFirst(t *testing.T) {
	f := setupDisplayFixture(t)
	testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A1", 50, 10)
	testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A2", 50, 30)
	testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A3", 50, 0)

	displays, err := f.repo.ListForProduct(context.Background(), f.productID)
	require.NoError(t, err)

	require.Len(t, displays, 2)
	assert.Equal(t, 30, displays[0].CurrentQuantity)
	assert.Equal(t, 10, displays[1].CurrentQuantity)
}

func TestDisplayRepository_TotalForProduct(t *testing.T) {
	f := setupDisplayFixture(t)
	testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A1", 50, 10)
	testutil.SeedDisplay(t, f.db, f.lotID, f.counterID, "A2", 50, 30)

	total, err := f.repo.TotalForProduct(context.Background(), f.productID)
	require.NoError(t, err)
	assert.Equal(t, 40, total)
}
