package boosttier_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/internal/repositories/boosttier"
	"github.com/Ramsey-B/fern/pkg/boost"
	"github.com/Ramsey-B/fern/pkg/database"
)

func getTestLogger() ectologger.Logger {
	return ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
}

func getTestDB(t *testing.T) database.DB {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		t.Skip("Database not configured")
	}
	dbUser := os.Getenv("DB_USER_NAME")
	if dbUser == "" {
		dbUser = "user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "password"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "fern"
	}

	dsn := "host=" + dbHost + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	return database.NewDatabaseInstance(db, getTestLogger())
}

func TestRepository_CRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := getTestDB(t)
	repo := boosttier.NewRepository(db, getTestLogger())
	ctx := context.Background()

	tier := boost.Tier{
		ID:                           uuid.New().String(),
		Name:                         "Gold",
		PayoutTokenBoostMultiplier:   2.0,
		PlatformTokenBoostMultiplier: 1.5,
		PayoutTokenSplitPercentage:   0.50,
		PlatformTokenSplitPercentage: 0.40,
	}

	t.Run("upsert inserts a new tier", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, tier))

		got, err := repo.GetTier(ctx, tier.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gold", got.Name)
		assert.Equal(t, 2.0, got.PayoutTokenBoostMultiplier)
		assert.Equal(t, 0.50, got.PayoutTokenSplitPercentage)
	})

	t.Run("upsert updates on conflict", func(t *testing.T) {
		tier.Name = "Gold Plus"
		tier.PayoutTokenBoostMultiplier = 3.0
		require.NoError(t, repo.Upsert(ctx, tier))

		got, err := repo.GetTier(ctx, tier.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gold Plus", got.Name)
		assert.Equal(t, 3.0, got.PayoutTokenBoostMultiplier)
	})

	t.Run("list includes the tier", func(t *testing.T) {
		tiers, err := repo.ListTiers(ctx)
		require.NoError(t, err)

		found := false
		for _, got := range tiers {
			if got.ID == tier.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("get missing tier returns 404", func(t *testing.T) {
		_, err := repo.GetTier(ctx, uuid.New().String())
		require.Error(t, err)
		assert.True(t, httperror.IsHTTPError(err))
		assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
	})
}
