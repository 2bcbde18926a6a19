package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hostelops/backend/internal/domain/billing"
	"github.com/hostelops/backend/internal/domain/shared"
)

// newMockPaymentRepository creates a GormPaymentRepository with a mocked SQL connection
func newMockPaymentRepository(t *testing.T) (*GormPaymentRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormPaymentRepository(gormDB), mock, mockDB
}

func paymentRows(paymentID, hostelID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "hostel_id", "amount", "amount_paid", "status", "payment_type"}).
		AddRow(paymentID, hostelID, decimal.NewFromInt(15000), decimal.Zero, "pending", "rent")
}

func TestGormPaymentRepository_FindByID(t *testing.T) {
	t.Run("finds existing payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		hostelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnRows(paymentRows(paymentID, hostelID))

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Equal(t, paymentID, payment.ID)
		assert.Equal(t, "rent", payment.PaymentType)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.Error(t, err)
		assert.Nil(t, payment)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_FindByReceiptNumber(t *testing.T) {
	t.Run("finds payment by receipt number", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		hostelID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "hostel_id", "amount", "amount_paid", "status", "payment_type", "receipt_number"}).
			AddRow(paymentID, hostelID, decimal.NewFromInt(15000), decimal.NewFromInt(15000), "paid", "rent", "RCP-0042")

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE receipt_number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("RCP-0042", 1).
			WillReturnRows(rows)

		payment, err := repo.FindByReceiptNumber(context.Background(), "RCP-0042")

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		require.NotNil(t, payment.ReceiptNumber)
		assert.Equal(t, "RCP-0042", *payment.ReceiptNumber)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_FindOutstanding(t *testing.T) {
	t.Run("filters to unsettled statuses within hostel", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()
		hostelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE hostel_id = \$1 AND status IN \(\$2,\$3,\$4\)`).
			WithArgs(hostelID, billing.PaymentStatusPending, billing.PaymentStatusPartial, billing.PaymentStatusOverdue).
			WillReturnRows(paymentRows(paymentID, hostelID))

		payments, err := repo.FindOutstanding(context.Background(),
			billing.PaymentScope{HostelID: &hostelID}, shared.Filter{})

		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_SumAmount(t *testing.T) {
	t.Run("sums amounts within date bounds", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total FROM "payments" WHERE COALESCE\(payment_date, created_at\) >= \$1 AND COALESCE\(payment_date, created_at\) <= \$2`).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(decimal.NewFromInt(45000)))

		total, err := repo.SumAmount(context.Background(),
			billing.PaymentScope{StartDate: &start, EndDate: &end})

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(45000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total FROM "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(decimal.Zero))

		total, err := repo.SumAmount(context.Background(), billing.PaymentScope{})

		assert.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_SumOutstanding(t *testing.T) {
	t.Run("sums unpaid portion over unsettled payments", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		hostelID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount - amount_paid\), 0\) AS total FROM "payments" WHERE hostel_id = \$1 AND status IN \(\$2,\$3,\$4\)`).
			WithArgs(hostelID, billing.PaymentStatusPending, billing.PaymentStatusPartial, billing.PaymentStatusOverdue).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(decimal.NewFromInt(7500)))

		total, err := repo.SumOutstanding(context.Background(),
			billing.PaymentScope{HostelID: &hostelID})

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(7500)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Save(t *testing.T) {
	t.Run("saves payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		hostelID := uuid.New()
		payment, err := billing.NewPayment(hostelID, nil, decimal.NewFromInt(15000), "rent", nil)
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "payments" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), payment)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Delete(t *testing.T) {
	t.Run("deletes existing payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectExec(`DELETE FROM "payments" WHERE id = \$1`).
			WithArgs(paymentID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), paymentID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent payment", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		paymentID := uuid.New()

		mock.ExpectExec(`DELETE FROM "payments" WHERE id = \$1`).
			WithArgs(paymentID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), paymentID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_Count(t *testing.T) {
	t.Run("counts payments for a tenant", func(t *testing.T) {
		repo, mock, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "payments" WHERE tenant_id = \$1`).
			WithArgs(tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

		count, err := repo.Count(context.Background(), billing.PaymentScope{TenantID: &tenantID})

		assert.NoError(t, err)
		assert.Equal(t, int64(9), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPaymentRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements PaymentRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockPaymentRepository(t)
		defer mockDB.Close()

		var _ billing.PaymentRepository = repo
	})
}
