package storage_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskStore(dir)

	content := []byte("fake image bytes")
	path, err := store.Save(uploadHeader(t, "logo.png", content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "uploads/"), "path %q should be under uploads/", path)
	assert.Equal(t, ".png", filepath.Ext(path))

	written, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestDiskStoreUniqueNames(t *testing.T) {
	store := storage.NewDiskStore(t.TempDir())

	first, err := store.Save(uploadHeader(t, "a.png", []byte("one")))
	require.NoError(t, err)
	second, err := store.Save(uploadHeader(t, "a.png", []byte("two")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := storage.NewDiskStore(dir)

	_, err := store.Save(uploadHeader(t, "a.txt", []byte("hello")))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSavedFileServedStatically(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskStore(dir)

	content := []byte("fake image bytes")
	path, err := store.Save(uploadHeader(t, "hero.jpg", content))
	require.NoError(t, err)

	app := fiber.New()
	app.Static("/uploads", dir)

	resp, err := app.Test(httptest.NewRequest("GET", "/"+path, nil), -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	served, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, served)

	resp, err = app.Test(httptest.NewRequest("GET", "/uploads/missing.jpg", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
