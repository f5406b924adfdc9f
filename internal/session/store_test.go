package session

import (
	"context"
	"testing"
	"time"

	"freshvegies/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithCart(id string) *Session {
	s := New(id, testProfile())
	s.SelectShop("s1")
	s.Cart.Add(model.Product{ID: "s1-p1", Name: "Fresh Red Tomatoes", Price: 40, Category: model.CategoryVegetables}, "Green Valley Organics")
	s.Cart.Add(model.Product{ID: "s1-p1", Name: "Fresh Red Tomatoes", Price: 40, Category: model.CategoryVegetables}, "Green Valley Organics")
	s.Cart.Add(model.Product{ID: "s1-p2", Name: "Alphonso Mangoes", Price: 800, DiscountPrice: model.Float64(720), Category: model.CategoryFruits}, "Green Valley Organics")
	return s
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sessionWithCart("abc")))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, model.ViewShopDetail, got.View)
	assert.Equal(t, "s1", got.SelectedShopID)
	assert.Equal(t, 2, got.Cart.Len())
	assert.Equal(t, 3, got.Cart.Count())
	assert.Equal(t, 800.0, got.Cart.Total())

	lines := got.Cart.Lines()
	assert.Equal(t, "s1-p1", lines[0].ID)
	assert.Equal(t, "s1-p2", lines[1].ID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sessionWithCart("abc")))

	first, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	first.Cart.Clear()
	first.Back()

	second, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Cart.Len())
	assert.Equal(t, model.ViewShopDetail, second.View)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("old", testProfile())))

	now = now.Add(30 * time.Second)
	_, err := store.Get(ctx, "old")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = store.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SweepsExpired(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("a", testProfile())))
	require.NoError(t, store.Save(ctx, New("b", testProfile())))
	assert.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, New("c", testProfile())))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_SweepsOnInterval(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	now := t0
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("a", testProfile())))
	now = t0.Add(4 * time.Minute)
	require.NoError(t, store.Save(ctx, New("b", testProfile())))

	now = t0.Add(10 * time.Minute)
	require.NoError(t, store.Save(ctx, New("c", testProfile())))
	assert.Equal(t, 2, store.Len(), "a swept")

	// b has expired but the next sweep is not due yet.
	now = t0.Add(14 * time.Minute)
	require.NoError(t, store.Save(ctx, New("d", testProfile())))
	assert.Equal(t, 3, store.Len())
	_, err := store.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	now = t0.Add(15 * time.Minute)
	require.NoError(t, store.Save(ctx, New("e", testProfile())))
	assert.Equal(t, 3, store.Len(), "c, d and e remain")
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, New("abc", testProfile())))

	require.NoError(t, store.Delete(ctx, "abc"))
	require.NoError(t, store.Delete(ctx, "abc"))

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, 2*time.Hour), mr
}

func TestRedisStore_SaveAndGet(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sessionWithCart("abc")))
	assert.True(t, mr.Exists("session:abc"))
	assert.Equal(t, 2*time.Hour, mr.TTL("session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, 3, got.Cart.Count())
	assert.Equal(t, 800.0, got.Cart.Total())
	assert.Equal(t, "Rahul Sharma", got.Profile.Name)
}

func TestRedisStore_NotFound(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, New("abc", testProfile())))
	mr.FastForward(3 * time.Hour)

	_, err := store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_InvalidJSON(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("session:abc", "not json"))

	got, err := store.Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestRedisStore_MissingCartDecodesEmpty(t *testing.T) {
	store, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("session:abc", `{"id":"abc","view":"HOME"}`))

	got, err := store.Get(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, got.Cart)
	assert.Equal(t, 0, got.Cart.Len())
}

func TestRedisStore_Delete(t *testing.T) {
	store, mr := setupTestRedis(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, New("abc", testProfile())))

	require.NoError(t, store.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("session:abc"))
}

func TestRedisStore_ConnectionError(t *testing.T) {
	store, mr := setupTestRedis(t)
	mr.Close()

	_, err := store.Get(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}
