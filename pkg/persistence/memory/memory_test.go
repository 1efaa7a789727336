package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	store := NewMemoryStore()
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("wc:request:1", []byte("a")))

	value, err := store.Get("wc:request:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), value)

	require.NoError(t, store.Delete("wc:request:1"))

	value, err = store.Get("wc:request:1")
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Delete("wc:request:1"))
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("wc:request:1", []byte("a")))
	require.NoError(t, store.Set("wc:request:2", []byte("b")))
	require.NoError(t, store.Set("other:1", []byte("c")))

	values, err := store.List("wc:request:")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]byte{[]byte("a"), []byte("b")}, values)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	store := NewMemoryStore()
	defer func() { _ = store.Close() }()

	original := []byte("abc")
	require.NoError(t, store.Set("k", original))
	original[0] = 'x'

	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), value)

	value[1] = 'y'
	again, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_Closed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	assert.Error(t, store.Set("k", nil))
	_, err := store.Get("k")
	assert.Error(t, err)
	assert.Error(t, store.HealthCheck())
}
