package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	info, err := store.Put(ctx, "documents/123-abc.xlsx", strings.NewReader("hello world"), PutObjectOptions{
		Size:        11,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), info.Size)
	assert.Equal(t, "documents/123-abc.xlsx", info.Key)

	rc, got, err := store.Get(ctx, "documents/123-abc.xlsx")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, int64(11), got.Size)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(body))

	require.NoError(t, store.Delete(ctx, "documents/123-abc.xlsx"))
	_, _, err = store.Get(ctx, "documents/123-abc.xlsx")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "documents/none.docx"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape.txt", "/etc/passwd", "a/../../b", "."} {
		_, err := store.Put(ctx, key, strings.NewReader("x"), PutObjectOptions{})
		assert.Error(t, err, "key %q must be rejected", key)
	}
}

func TestNewLocal_RequiresDir(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)
}
