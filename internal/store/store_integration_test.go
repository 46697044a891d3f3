package store

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	berrors "github.com/andrerobles/backoffice/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const skipIntegrationTests = "BACKOFFICE_SKIP_INTEGRATION_TESTS"

// StoreSuite exercises the Postgres store implementations against a real
// database.
type StoreSuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	dbPool      *pgxpool.Pool
	categories  CategoryStore
	products    ProductStore
	orders      OrderStore
	logger      *slog.Logger
	ctx         context.Context
}

func (s *StoreSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error
	s.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dbName := "backoffice_db"
	dbUser := "user"
	dbPassword := "password"

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:17.5-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(s.T(), err, "Failed to run PostgreSQL container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get connection string from container")

	s.dbPool, err = pgxpool.New(s.ctx, connStr)
	require.NoError(s.T(), err, "Failed to create pgxpool")

	for i := range 10 {
		s.logger.Info("Pinging PostgreSQL database", "attempt", i+1)
		err = s.dbPool.Ping(s.ctx)
		if err == nil {
			break
		}
		time.Sleep(time.Second * 2)
	}
	require.NoError(s.T(), err, "Failed to connect to PostgreSQL after retries")

	require.NoError(s.T(), ApplyMigrations(connStr), "Failed to apply migrations")
	s.logger.Info("Migrations applied for integration tests")

	s.categories = NewPgCategoryStore(s.dbPool)
	s.products = NewPgProductStore(s.dbPool)
	s.orders = NewPgOrderStore(s.dbPool)
}

func (s *StoreSuite) TearDownSuite() {
	s.logger.Info("Tearing down suite...")
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(s.ctx); err != nil {
			s.logger.Warn("failed to terminate PostgreSQL container", "error", err)
		}
	}
}

// SetupTest empties all three tables so tests are independent.
func (s *StoreSuite) SetupTest() {
	_, err := s.dbPool.Exec(s.ctx, "TRUNCATE TABLE categories, products, orders")
	require.NoError(s.T(), err, "Failed to truncate tables")
}

func TestStoreIntegration(t *testing.T) {
	if os.Getenv(skipIntegrationTests) == "1" {
		t.Skip("Skipping integration tests based on " + skipIntegrationTests + " env var")
	}
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestCategoryLifecycle() {
	s.SetupTest()
	// given
	created, err := s.categories.Create(s.ctx, "Books")
	require.NoError(s.T(), err)
	require.NotZero(s.T(), created.ID)
	require.False(s.T(), created.CreatedAt.IsZero())

	// when
	found, err := s.categories.FindByID(s.ctx, created.ID)

	// then
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Books", found.Name)

	// update
	found.Name = "Board Games"
	updated, err := s.categories.Update(s.ctx, found)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Board Games", updated.Name)

	// delete
	deleted, err := s.categories.DeleteByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.True(s.T(), deleted)

	_, err = s.categories.FindByID(s.ctx, created.ID)
	require.ErrorIs(s.T(), err, berrors.ErrCategoryNotFound)

	deleted, err = s.categories.DeleteByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.False(s.T(), deleted, "second delete finds nothing")
}

func (s *StoreSuite) TestCategoryFindAllOrder() {
	s.SetupTest()
	// given
	for _, name := range []string{"A", "B", "C"} {
		_, err := s.categories.Create(s.ctx, name)
		require.NoError(s.T(), err)
	}

	// when
	all, err := s.categories.FindAll(s.ctx)

	// then insertion order is preserved
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 3)
	require.Equal(s.T(), "A", all[0].Name)
	require.Equal(s.T(), "C", all[2].Name)
}

func (s *StoreSuite) TestProductWithCategoryRefs() {
	s.SetupTest()
	// given
	books, err := s.categories.Create(s.ctx, "Books")
	require.NoError(s.T(), err)

	// when
	created, err := s.products.Create(s.ctx, &Product{
		Name:        "Atlas",
		Description: "World maps",
		Price:       30.5,
		CategoryIDs: []uuid.UUID{books.ID},
		ImageURL:    "https://example.com/atlas.jpg",
	})

	// then the uuid array round-trips
	require.NoError(s.T(), err)
	found, err := s.products.FindByID(s.ctx, created.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uuid.UUID{books.ID}, found.CategoryIDs)
	require.Equal(s.T(), 30.5, found.Price)
}

func (s *StoreSuite) TestProductFindByIDs() {
	s.SetupTest()
	// given
	first, err := s.products.Create(s.ctx, &Product{Name: "Atlas"})
	require.NoError(s.T(), err)
	second, err := s.products.Create(s.ctx, &Product{Name: "Chess Set"})
	require.NoError(s.T(), err)

	// when asked for one existing and one unknown id
	found, err := s.products.FindByIDs(s.ctx, []uuid.UUID{first.ID, uuid.New()})

	// then only the existing one comes back
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 1)
	require.Equal(s.T(), first.ID, found[0].ID)

	found, err = s.products.FindByIDs(s.ctx, []uuid.UUID{first.ID, second.ID})
	require.NoError(s.T(), err)
	require.Len(s.T(), found, 2)
}

func (s *StoreSuite) TestOrderMostRecentFirst() {
	s.SetupTest()
	// given orders created out of date order
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	_, err := s.orders.Create(s.ctx, &Order{Date: old, Total: 10})
	require.NoError(s.T(), err)
	_, err = s.orders.Create(s.ctx, &Order{Date: recent, Total: 20})
	require.NoError(s.T(), err)

	// when
	all, err := s.orders.FindAll(s.ctx)

	// then
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 2)
	require.Equal(s.T(), 20.0, all[0].Total, "most recent order first")
}

func (s *StoreSuite) TestOrderUpdate() {
	s.SetupTest()
	// given
	product, err := s.products.Create(s.ctx, &Product{Name: "Atlas", Price: 30})
	require.NoError(s.T(), err)
	created, err := s.orders.Create(s.ctx, &Order{Date: time.Now().UTC(), Total: 30})
	require.NoError(s.T(), err)

	// when
	created.ProductIDs = []uuid.UUID{product.ID}
	created.Total = 60
	updated, err := s.orders.Update(s.ctx, created)

	// then
	require.NoError(s.T(), err)
	require.Equal(s.T(), 60.0, updated.Total)
	require.Equal(s.T(), []uuid.UUID{product.ID}, updated.ProductIDs)
}
