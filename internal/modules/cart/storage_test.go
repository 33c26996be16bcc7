package cart

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx, "cart:nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "cart:abc", []byte(`[{"quantity":1}]`)))
	require.NoError(t, s.Save(ctx, "cart:abc", []byte(`[]`)))

	got, err := s.Load(ctx, "cart:abc")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)

	exerciseStorage(t, fs)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStorageKeysCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save(context.Background(), "../../etc/cart", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStorageFromClient(client, time.Hour)
	exerciseStorage(t, s)

	mr.FastForward(2 * time.Hour)
	_, err := s.Load(context.Background(), "cart:abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStorageAcceptsURLAndAddr(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	byURL, err := NewRedisStorage(ctx, "redis://"+mr.Addr()+"/0", 0)
	require.NoError(t, err)
	defer byURL.Close()

	byAddr, err := NewRedisStorage(ctx, mr.Addr(), 0)
	require.NoError(t, err)
	defer byAddr.Close()

	require.NoError(t, byURL.Save(ctx, "k", []byte("v")))
	got, err := byAddr.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestStoreOverFileStorageSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fs, err := NewFileStorage(dir)
	require.NoError(t, err)
	NewStore(ctx, fs, DefaultKey, quietLogger()).AddToCart(ctx, partB, 3)

	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)
	s := NewStore(ctx, reopened, DefaultKey, quietLogger())

	assert.Equal(t, 3, s.Quantity("b"))
}
