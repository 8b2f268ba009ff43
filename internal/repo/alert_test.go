package repo

import (
	"context"
	"testing"
	"time"

	"github.com/quillon/stocksentry/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))
	return db
}

func TestAlertRepo_CreateAndFindRecent(t *testing.T) {
	r := NewAlertRepo(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	for i, symbol := range []string{"TCS", "INFY", "WIPRO"} {
		_, err := r.Create(ctx, entity.SentAlert{
			Kind:      entity.AlertKindBuy,
			User:      "ravi",
			Symbol:    symbol,
			Price:     "100",
			Ordinal:   1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	recent, err := r.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "WIPRO", recent[0].Symbol, "newest first")
	assert.Equal(t, "INFY", recent[1].Symbol)
}

func TestAlertRepo_FindByUser(t *testing.T) {
	r := NewAlertRepo(newTestDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, entity.SentAlert{Kind: entity.AlertKindSell, User: "ravi", Symbol: "TCS"})
	require.NoError(t, err)
	_, err = r.Create(ctx, entity.SentAlert{Kind: entity.AlertKindSell, User: "meera", Symbol: "INFY"})
	require.NoError(t, err)

	got, err := r.FindByUser(ctx, "ravi", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TCS", got[0].Symbol)
}
