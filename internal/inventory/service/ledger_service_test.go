package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/inventory/repository"
	productrepo "github.com/vinhnt21/smartmart/internal/product/repository"
	"github.com/vinhnt21/smartmart/internal/testutil"
)

type ledgerEnv struct {
	db        *sql.DB
	svc       *LedgerService
	productID int
	counterID int
}

func setupLedgerTest(t *testing.T) *ledgerEnv {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	categoryID := testutil.SeedCategory(t, db, "Frozen")
	counterID := testutil.SeedCounter(t, db, "Freezer", categoryID)
	productID := testutil.SeedProduct(t, db, "Ice Cream", categoryID, nil, nil)

	svc := NewLedgerService(
		db,
		repository.NewMySQLLotRepository(db),
		repository.NewMySQLDisplayRepository(db),
		repository.NewMySQLCounterRepository(db),
		productrepo.NewMySQLProductsRepository(db),
		zap.NewNop(),
		5*time.Second,
	)

	return &ledgerEnv{db: db, svc: svc, productID: productID, counterID: counterID}
}

func TestReceiveLot_UnknownProduct(t *testing.T) {
	env := setupLedgerTest(t)

	_, err := env.svc.ReceiveLot(context.Background(), 999999, 10, time.Now())

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestReceiveLot_SameDayReceiptsStayDistinct(t *testing.T) {
	env := setupLedgerTest(t)
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	first, err := env.svc.ReceiveLot(context.Background(), env.productID, 30, day)
	require.NoError(t, err)
	second, err := env.svc.ReceiveLot(context.Background(), env.productID, 20, day)
	require.NoError(t, err)

	assert.NotEqual(t, first.LotID, second.LotID)

	totals, err := env.svc.StockTotals(context.Background(), env.productID)
	require.NoError(t, err)
	assert.Equal(t, 50, totals.WarehouseQty)
	assert.Equal(t, 0, totals.CounterQty)
}

func TestDecrementLot_InsufficientStock(t *testing.T) {
	env := setupLedgerTest(t)
	lotID := testutil.SeedLot(t, env.db, env.productID, 5)

	err := env.svc.DecrementLot(context.Background(), lotID, 6)

	ise, ok := apperrors.IsInsufficientStockError(err)
	require.True(t, ok)
	assert.Equal(t, 5, ise.Available)

	var qty int
	require.NoError(t, env.db.QueryRow(`SELECT Quantity FROM INVENTORY WHERE InventoryID = ?`, lotID).Scan(&qty))
	assert.Equal(t, 5, qty)
}

func TestIncrementDisplay_CapacityEnforced(t *testing.T) {
	env := setupLedgerTest(t)
	lotID := testutil.SeedLot(t, env.db, env.productID, 100)
	displayID := testutil.SeedDisplay(t, env.db, lotID, env.counterID, "A1", 10, 8)

	err := env.svc.IncrementDisplay(context.Background(), displayID, 3)

	cee, ok := apperrors.IsCapacityExceededError(err)
	require.True(t, ok)
	assert.Equal(t, 2, cee.Free)

	require.NoError(t, env.svc.IncrementDisplay(context.Background(), displayID, 2))
}

func TestDecrementDisplay_ClampReportsRemoved(t *testing.T) {
	env := setupLedgerTest(t)
	lotID := testutil.SeedLot(t, env.db, env.productID, 100)
	displayID := testutil.SeedDisplay(t, env.db, lotID, env.counterID, "A1", 10, 4)

	removed, err := env.svc.DecrementDisplay(context.Background(), displayID, 9)

	require.NoError(t, err)
	assert.Equal(t, 4, removed)

	var qty int
	require.NoError(t, env.db.QueryRow(`SELECT CurrentQuantity FROM DISPLAYS WHERE DisplayID = ?`, displayID).Scan(&qty))
	assert.Equal(t, 0, qty)
}
