package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmikh/job-tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxSize int64) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), maxSize)
	require.NoError(t, err)
	return store
}

func TestSave_WritesUnderUserAndJobDir(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	rel, size, err := store.Save(7, 3, "resume.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)
	assert.Equal(t, filepath.Join("user_7", "job_3"), filepath.Dir(rel))
	assert.True(t, strings.HasPrefix(filepath.Base(rel), "resume_"))
	assert.True(t, strings.HasSuffix(rel, ".pdf"))

	path, err := store.Path(rel)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestSave_UniquePerUpload(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	rel1, _, err := store.Save(1, 1, "resume.pdf", "application/pdf", strings.NewReader("a"))
	require.NoError(t, err)
	rel2, _, err := store.Save(1, 1, "resume.pdf", "application/pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, rel1, rel2)
}

func TestSave_DisallowedExtension(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	_, _, err := store.Save(1, 1, "malware.exe", "application/pdf", strings.NewReader("x"))
	assertBadRequest(t, err)
}

func TestSave_DisallowedMIMEType(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	_, _, err := store.Save(1, 1, "resume.pdf", "image/png", strings.NewReader("x"))
	assertBadRequest(t, err)
}

func TestSave_EmptyFilename(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	_, _, err := store.Save(1, 1, "", "application/pdf", strings.NewReader("x"))
	assertBadRequest(t, err)
}

func TestSave_OversizedUploadWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewFileStore(dir, 10)
	require.NoError(t, err)

	_, _, err = store.Save(1, 1, "big.txt", "text/plain", strings.NewReader(strings.Repeat("a", 11)))
	assertBadRequest(t, err)

	// Nothing may remain on disk after a rejected upload
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_ExactlyAtLimit(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 10)

	_, size, err := store.Save(1, 1, "ok.txt", "text/plain", strings.NewReader(strings.Repeat("a", 10)))
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)
}

func TestDelete_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	require.NoError(t, store.Delete("user_1/job_1/gone.pdf"))
}

func TestPath_MissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, 1<<20)

	_, err := store.Path("user_1/job_1/gone.pdf")
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
}

func assertBadRequest(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
}
