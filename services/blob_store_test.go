package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSBlobStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and read back a blob", func(t *testing.T) {
		store := NewFSBlobStore(afero.NewMemMapFs())

		n, err := store.Put(ctx, "incident/file.txt", strings.NewReader("hello"), 10)
		require.NoError(t, err)
		assert.EqualValues(t, 5, n)

		r, err := store.Get(ctx, "incident/file.txt")
		require.NoError(t, err)
		defer r.Close()
		content, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))
	})

	t.Run("should reject contents above the limit and keep nothing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := NewFSBlobStore(fs)

		_, err := store.Put(ctx, "incident/big.txt", strings.NewReader("0123456789"), 4)
		assert.True(t, errors.Is(err, shared.ErrValidation))

		exists, err := afero.Exists(fs, "/incident/big.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should accept contents of exactly the limit", func(t *testing.T) {
		store := NewFSBlobStore(afero.NewMemMapFs())

		n, err := store.Put(ctx, "incident/exact.txt", strings.NewReader("0123"), 4)
		require.NoError(t, err)
		assert.EqualValues(t, 4, n)
	})

	t.Run("should refuse keys leaving the root", func(t *testing.T) {
		store := NewFSBlobStore(afero.NewMemMapFs())

		_, err := store.Put(ctx, "../etc/passwd", strings.NewReader("x"), 10)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should return not found for missing blobs and ignore deleting them", func(t *testing.T) {
		store := NewFSBlobStore(afero.NewMemMapFs())

		_, err := store.Get(ctx, "missing.txt")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.NoError(t, store.Delete(ctx, "missing.txt"))
	})
}

func TestAttachmentConfigFromEnv(t *testing.T) {
	t.Run("should normalize the allowed extensions", func(t *testing.T) {
		t.Setenv("ATTACHMENT_ALLOWED_EXTENSIONS", "PNG, .log,,txt")
		t.Setenv("ATTACHMENT_MAX_BYTES", "1024")

		cfg := AttachmentConfigFromEnv()
		assert.Equal(t, []string{".png", ".log", ".txt"}, cfg.AllowedExtensions)
		assert.EqualValues(t, 1024, cfg.MaxBytes)
	})

	t.Run("should keep the default size on garbage", func(t *testing.T) {
		t.Setenv("ATTACHMENT_MAX_BYTES", "ten")

		cfg := AttachmentConfigFromEnv()
		assert.Equal(t, defaultAttachmentMaxBytes, cfg.MaxBytes)
	})
}
