package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockApartmentRepository(t *testing.T) (*GormApartmentRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormApartmentRepository(db), mock
}

func apartmentColumns() []string {
	return []string{"id", "created_at", "updated_at", "version", "number", "floor", "square_meters", "notes"}
}

func TestApartmentRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockApartmentRepository(t)
		id := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(apartmentColumns()).
			AddRow(id, now, now, 1, "3A", 3, "52.50", "corner unit")

		mock.ExpectQuery(`SELECT \* FROM "apartments" WHERE id = \$1 ORDER BY "apartments"\."id" LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(rows)

		apartment, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "3A", apartment.Number)
		require.NotNil(t, apartment.Floor)
		assert.Equal(t, 3, *apartment.Floor)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockApartmentRepository(t)
		id := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "apartments" WHERE id = \$1 ORDER BY "apartments"\."id" LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows(apartmentColumns()))

		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApartmentRepository_FindByNumber(t *testing.T) {
	repo, mock := newMockApartmentRepository(t)
	now := time.Now()

	rows := sqlmock.NewRows(apartmentColumns()).
		AddRow(uuid.New(), now, now, 1, "7B", nil, nil, "")

	mock.ExpectQuery(`SELECT \* FROM "apartments" WHERE number = \$1 ORDER BY "apartments"\."id" LIMIT \$2`).
		WithArgs("7B", 1).
		WillReturnRows(rows)

	apartment, err := repo.FindByNumber(context.Background(), "7B")
	require.NoError(t, err)
	assert.Equal(t, "7B", apartment.Number)
	assert.Nil(t, apartment.Floor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApartmentRepository_Count(t *testing.T) {
	repo, mock := newMockApartmentRepository(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "apartments" WHERE number ILIKE \$1`).
		WithArgs("%3%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count(context.Background(), shared.Filter{Search: "3"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApartmentRepository_Delete(t *testing.T) {
	t.Run("deletes existing row", func(t *testing.T) {
		repo, mock := newMockApartmentRepository(t)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM "apartments" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, mock := newMockApartmentRepository(t)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM "apartments" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
