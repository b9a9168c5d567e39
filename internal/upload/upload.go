// Package upload guarda imágenes subidas bajo un subdirectorio por
// categoría con nombre UUID y devuelve la URL relativa. El resto del
// sistema nunca toca los bytes del fichero.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxFileSize = 10 << 20 // 10 MiB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ErrInvalidFile: extensión no permitida o tamaño excesivo.
var ErrInvalidFile = errors.New("invalid file")

type Service struct {
	dir string

	NewName func() string
}

// NewService prepara el directorio base y sus subcarpetas.
func NewService(dir string) (*Service, error) {
	for _, sub := range []string{"products", "collections"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, err
		}
	}
	return &Service{dir: dir, NewName: uuid.NewString}, nil
}

// Dir devuelve el directorio base (para servir estáticos).
func (s *Service) Dir() string {
	return s.dir
}

func (s *Service) validate(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extension %q not allowed", ErrInvalidFile, ext)
	}
	if fh.Size > maxFileSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidFile, int64(maxFileSize))
	}
	return ext, nil
}

// Save valida y persiste un fichero; devuelve la URL relativa.
func (s *Service) Save(fh *multipart.FileHeader, category string) (string, error) {
	if category != "products" && category != "collections" {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidFile, category)
	}
	ext, err := s.validate(fh)
	if err != nil {
		return "", err
	}

	name := s.NewName() + ext
	path := filepath.Join(s.dir, category, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s", category, name), nil
}

// SaveAll persiste un lote; si alguno falla borra los ya escritos.
func (s *Service) SaveAll(files []*multipart.FileHeader, category string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.Save(fh, category)
		if err != nil {
			for _, u := range urls {
				s.Delete(u)
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// Delete borra un fichero a partir de su URL relativa.
func (s *Service) Delete(url string) bool {
	rel, ok := strings.CutPrefix(url, "/uploads/")
	if !ok {
		return false
	}
	path := filepath.Join(s.dir, filepath.FromSlash(rel))
	return os.Remove(path) == nil
}
