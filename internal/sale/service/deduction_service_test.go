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
	invrepo "github.com/vinhnt21/smartmart/internal/inventory/repository"
	"github.com/vinhnt21/smartmart/internal/testutil"
)

type deductionEnv struct {
	db        *sql.DB
	svc       *DeductionService
	productID int
	lotID     int
	counterID int
}

func setupDeductionTest(t *testing.T) *deductionEnv {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	categoryID := testutil.SeedCategory(t, db, "Bakery")
	counterID := testutil.SeedCounter(t, db, "Bakery Counter", categoryID)
	productID := testutil.SeedProduct(t, db, "Baguette", categoryID, nil, nil)
	lotID := testutil.SeedLot(t, db, productID, 100)

	svc := NewDeductionService(db, invrepo.NewMySQLDisplayRepository(db), zap.NewNop(), 5*time.Second)

	return &deductionEnv{db: db, svc: svc, productID: productID, lotID: lotID, counterID: counterID}
}

func (e *deductionEnv) displayQuantity(t *testing.T, displayID int) int {
	var qty int
	err := e.db.QueryRow(`SELECT CurrentQuantity FROM DISPLAYS WHERE DisplayID = ?`, displayID).Scan(&qty)
	require.NoError(t, err)
	return qty
}

func TestRecordSaleDeduction_FullestDisplayFirst(t *testing.T) {
	env := setupDeductionTest(t)

	big := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A1", 50, 30)
	mid := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A2", 50, 10)
	small := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A3", 50, 5)

	result, err := env.svc.RecordSaleDeduction(context.Background(), env.productID, 35)

	require.NoError(t, err)
	assert.Equal(t, 35, result.Deducted)
	assert.Equal(t, 0, result.Shortfall)
	require.Len(t, result.Lines, 2)

	assert.Equal(t, 0, env.displayQuantity(t, big))
	assert.Equal(t, 5, env.displayQuantity(t, mid))
	assert.Equal(t, 5, env.displayQuantity(t, small))
}

func TestRecordSaleDeduction_OversellYieldsShortfall(t *testing.T) {
	env := setupDeductionTest(t)

	a := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A1", 50, 7)
	b := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A2", 50, 5)

	result, err := env.svc.RecordSaleDeduction(context.Background(), env.productID, 20)

	require.NoError(t, err)
	assert.Equal(t, 12, result.Deducted)
	assert.Equal(t, 8, result.Shortfall)

	assert.Equal(t, 0, env.displayQuantity(t, a))
	assert.Equal(t, 0, env.displayQuantity(t, b))
}

func TestRecordSaleDeduction_NoDisplays(t *testing.T) {
	env := setupDeductionTest(t)

	_, err := env.svc.RecordSaleDeduction(context.Background(), env.productID, 3)

	nde, ok := apperrors.IsNothingToDeductError(err)
	require.True(t, ok)
	assert.Equal(t, env.productID, nde.ProductID)
}

func TestRecordSaleDeduction_EmptiedDisplaysAreSkipped(t *testing.T) {
	env := setupDeductionTest(t)

	empty := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A1", 50, 0)
	stocked := testutil.SeedDisplay(t, env.db, env.lotID, env.counterID, "A2", 50, 4)

	result, err := env.svc.RecordSaleDeduction(context.Background(), env.productID, 2)

	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 0, env.displayQuantity(t, empty))
	assert.Equal(t, 2, env.displayQuantity(t, stocked))
}

func TestRecordSaleDeduction_RejectsNonPositiveQuantity(t *testing.T) {
	env := setupDeductionTest(t)

	_, err := env.svc.RecordSaleDeduction(context.Background(), env.productID, 0)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
