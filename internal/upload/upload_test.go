package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fileHeader fabrica un *multipart.FileHeader real pasando por el
// parser de multipart de net/http.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir())
	require.NoError(t, err)
	return svc
}

func TestSave(t *testing.T) {
	t.Run("SavesUnderCategoryWithGeneratedName", func(t *testing.T) {
		svc := newTestService(t)
		svc.NewName = func() string { return "fixed-name" }

		url, err := svc.Save(fileHeader(t, "photo.JPG", []byte("jpegdata")), "products")
		require.NoError(t, err)
		require.Equal(t, "/uploads/products/fixed-name.jpg", url)

		data, err := os.ReadFile(filepath.Join(svc.Dir(), "products", "fixed-name.jpg"))
		require.NoError(t, err)
		require.Equal(t, []byte("jpegdata"), data)
	})

	t.Run("RejectsUnknownExtension", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Save(fileHeader(t, "shell.sh", []byte("#!/bin/sh")), "products")
		require.ErrorIs(t, err, ErrInvalidFile)
	})

	t.Run("RejectsUnknownCategory", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.Save(fileHeader(t, "photo.png", []byte("png")), "secrets")
		require.ErrorIs(t, err, ErrInvalidFile)
	})
}

func TestSaveAll(t *testing.T) {
	t.Run("AllOrNothing", func(t *testing.T) {
		svc := newTestService(t)

		files := []*multipart.FileHeader{
			fileHeader(t, "a.png", []byte("one")),
			fileHeader(t, "b.exe", []byte("two")),
		}
		_, err := svc.SaveAll(files, "collections")
		require.ErrorIs(t, err, ErrInvalidFile)

		// el primero ya guardado debe haberse limpiado
		entries, err := os.ReadDir(filepath.Join(svc.Dir(), "collections"))
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("ReturnsURLsInOrder", func(t *testing.T) {
		svc := newTestService(t)
		names := []string{"first", "second"}
		svc.NewName = func() string {
			n := names[0]
			names = names[1:]
			return n
		}

		files := []*multipart.FileHeader{
			fileHeader(t, "a.png", []byte("one")),
			fileHeader(t, "b.webp", []byte("two")),
		}
		urls, err := svc.SaveAll(files, "products")
		require.NoError(t, err)
		require.Equal(t, []string{
			"/uploads/products/first.png",
			"/uploads/products/second.webp",
		}, urls)
	})
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	url, err := svc.Save(fileHeader(t, "photo.webp", []byte("bytes")), "products")
	require.NoError(t, err)

	require.True(t, svc.Delete(url))
	require.False(t, svc.Delete(url))
	require.False(t, svc.Delete("/elsewhere/file.png"))
}
