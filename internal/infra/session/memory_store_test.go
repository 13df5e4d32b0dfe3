package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"crimson/config"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestStore(ttl time.Duration) (*MemoryStore, *time.Time) {
	return newCappedTestStore(ttl, 0)
}

func newCappedTestStore(ttl time.Duration, maxSessions int) (*MemoryStore, *time.Time) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(ttl, maxSessions, slog.New(slog.NewTextHandler(io.Discard, nil)))
	store.now = func() time.Time { return now }

	return store, &now
}

func addLine(id uuid.UUID) func(*entity.Cart) error {
	return func(cart *entity.Cart) error {
		cart.Add(entity.CartLine{ListingID: id, Title: "Lamp", UnitPrice: decimal.NewFromInt(1500)})

		return nil
	}
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, store.With(ctx, "a", addLine(id)))
	require.NoError(t, store.With(ctx, "a", addLine(id)))

	var itemsA, itemsB int
	require.NoError(t, store.With(ctx, "a", func(cart *entity.Cart) error {
		itemsA = cart.TotalItems()

		return nil
	}))
	require.NoError(t, store.With(ctx, "b", func(cart *entity.Cart) error {
		itemsB = cart.TotalItems()

		return nil
	}))

	assert.Equal(t, 2, itemsA)
	assert.Equal(t, 0, itemsB)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_EmptyCartHoldsNoEntry(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()
	id := uuid.New()

	for range 100 {
		require.NoError(t, store.With(ctx, uuid.NewString(), func(*entity.Cart) error { return nil }))
	}
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.With(ctx, "a", addLine(id)))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.With(ctx, "a", func(cart *entity.Cart) error {
		cart.Remove(id)

		return nil
	}))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_SessionLimit(t *testing.T) {
	store, _ := newCappedTestStore(time.Hour, 2)
	ctx := context.Background()

	require.NoError(t, store.With(ctx, "a", addLine(uuid.New())))
	require.NoError(t, store.With(ctx, "b", addLine(uuid.New())))

	err := store.With(ctx, "c", addLine(uuid.New()))
	assert.ErrorIs(t, err, domainerrors.ErrCartSessionsExhausted)
	assert.Equal(t, 2, store.Len())

	// Existing sessions keep working at the limit.
	require.NoError(t, store.With(ctx, "a", addLine(uuid.New())))

	store.Drop(ctx, "b")
	require.NoError(t, store.With(ctx, "c", addLine(uuid.New())))
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_PropagatesError(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	want := errors.New("listing gone")

	err := store.With(context.Background(), "a", func(*entity.Cart) error { return want })
	assert.ErrorIs(t, err, want)
}

func TestMemoryStore_Drop(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.With(ctx, "a", addLine(uuid.New())))
	store.Drop(ctx, "a")
	store.Drop(ctx, "missing")

	var empty bool
	require.NoError(t, store.With(ctx, "a", func(cart *entity.Cart) error {
		empty = cart.IsEmpty()

		return nil
	}))
	assert.True(t, empty)
}

func TestMemoryStore_Sweep(t *testing.T) {
	store, now := newTestStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.With(ctx, "old", addLine(uuid.New())))
	*now = now.Add(45 * time.Minute)
	require.NoError(t, store.With(ctx, "fresh", addLine(uuid.New())))
	*now = now.Add(30 * time.Minute)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	*now = now.Add(time.Hour)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	store, _ := newTestStore(time.Hour)
	ctx := context.Background()
	id := uuid.New()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(ctx, "shared", addLine(id))
		}()
	}
	wg.Wait()

	var quantity int
	require.NoError(t, store.With(ctx, "shared", func(cart *entity.Cart) error {
		line, ok := cart.Line(id)
		require.True(t, ok)
		quantity = line.Quantity

		return nil
	}))
	assert.Equal(t, 50, quantity)
}

func TestNewCartSessionStore_Lifecycle(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cart.SessionTTL = time.Hour
	cfg.Cart.SweepInterval = time.Millisecond

	lc := fxtest.NewLifecycle(t)
	store := NewCartSessionStore(Params{
		Lc:     lc,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	lc.RequireStart()
	require.NoError(t, store.With(context.Background(), "a", addLine(uuid.New())))
	lc.RequireStop()

	assert.Equal(t, 1, store.(*MemoryStore).Len())
}
