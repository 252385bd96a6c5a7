package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
	"github.com/Rogue-Bear-Innovations/holonet-back/internal/models"
)

func newMockCatalog(t *testing.T) (*Catalog, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewCatalog(gdb, &config.Config{BcryptCost: bcrypt.MinCost}, zap.NewNop().Sugar()), mock
}

func isTaxonomyError(err error) bool {
	return errors.Is(err, ErrBadRequest) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict)
}

func TestPlanetCreateInsertFailureRollsBack(t *testing.T) {
	catalog, mock := newMockCatalog(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "planets"`).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	got, err := catalog.PlanetCreate(context.Background(), models.PlanetReq{
		Name:        "Kamino",
		Description: "ocean",
		URL:         "u",
	})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.False(t, isTaxonomyError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanetCreateCommitFailure(t *testing.T) {
	catalog, mock := newMockCatalog(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	got, err := catalog.PlanetCreate(context.Background(), models.PlanetReq{
		Name:        "Kamino",
		Description: "ocean",
		URL:         "u",
	})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.False(t, isTaxonomyError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanetCreateExistingNameSkipsInsert(t *testing.T) {
	catalog, mock := newMockCatalog(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := catalog.PlanetCreate(context.Background(), models.PlanetReq{
		Name:        "Kamino",
		Description: "ocean",
		URL:         "u",
	})
	assert.True(t, errors.Is(err, ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanetCreateLateUniqueViolation(t *testing.T) {
	catalog, mock := newMockCatalog(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "planets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "planets"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	got, err := catalog.PlanetCreate(context.Background(), models.PlanetReq{
		Name:        "Kamino",
		Description: "ocean",
		URL:         "u",
	})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}
