package repository

import (
	"context"
	"testing"

	"invoice-dashboard-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestInsertUsesParameterizedStatement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectExec(`INSERT INTO "invoices"`).
		WithArgs("inv-1", "c1", int64(4999), "pending", "2026-09-01", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), models.Invoice{
		ID:          "inv-1",
		CustomerID:  "c1",
		AmountCents: 4999,
		Status:      "pending",
		Date:        "2026-09-01",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateIsScopedByIDAndSkipsDate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvoiceRepository(db)

	// Only customer_id, amount and status are written; date stays untouched.
	mock.ExpectExec(`UPDATE "invoices" SET "amount"=\$1,"customer_id"=\$2,"status"=\$3 WHERE id = \$4`).
		WithArgs(int64(1250), "c2", "paid", "inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), models.Invoice{
		ID:          "inv-1",
		CustomerID:  "c2",
		AmountCents: 1250,
		Status:      "paid",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingIDAffectsZeroRowsWithoutError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectExec(`DELETE FROM "invoices" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvoiceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "customer_id", "amount", "status", "date"}).
		AddRow("inv-1", "c1", int64(4999), "pending", "2026-09-01")
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WithArgs("inv-1", 1).
		WillReturnRows(rows)

	inv, err := repo.GetByID(context.Background(), "inv-1")

	require.NoError(t, err)
	assert.Equal(t, int64(4999), inv.AmountCents)
	assert.Equal(t, "c1", inv.CustomerID)
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInvoiceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "invoices"`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
