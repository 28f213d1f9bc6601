package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticBackend struct {
	data []byte
}

func (b *staticBackend) Read(_ context.Context, imagePath string) ([]byte, error) {
	if imagePath != "photo.jpg" {
		return nil, ErrSourceNotFound
	}
	return b.data, nil
}

func TestRegistry_Fetch(t *testing.T) {
	registry := NewRegistry(&staticBackend{[]byte("default")}, map[string]Backend{
		"uploads": &staticBackend{[]byte("uploads")},
		"":        &staticBackend{[]byte("ignored")},
	})

	data, err := registry.Fetch(context.Background(), "", "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("default"), data)

	data, err = registry.Fetch(context.Background(), "uploads", "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("uploads"), data)

	_, err = registry.Fetch(context.Background(), "uploads", "missing.jpg")
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, err = registry.Fetch(context.Background(), "other", "photo.jpg")
	assert.ErrorIs(t, err, ErrUnknownDisk)

	assert.Equal(t, []string{"uploads"}, registry.Disks())
}
