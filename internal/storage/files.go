package storage

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

const (
	CategoryBarbershops = "barbershops"
	CategoryProfiles    = "profiles"

	MaxBarbershopImageSize = 5 << 20
	MaxProfileImageSize    = 2 << 20

	ThumbnailSize    = 200
	ThumbnailQuality = 70
)

// Service stores uploaded images on local disk and optionally publishes the
// processed results to a remote backend.
type Service struct {
	root   string
	remote Backend
}

func NewService(root string, remote Backend) (*Service, error) {
	for _, dir := range []string{CategoryBarbershops, CategoryProfiles} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, err
		}
	}
	return &Service{root: root, remote: remote}, nil
}

// UniqueName replaces a user-supplied filename with a fresh uuid, keeping only
// a sanitized extension. This blocks both collisions and path traversal.
func UniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		ext = ""
	}
	return uuid.NewString() + ext
}

// ValidateImage checks the declared size and the sniffed content type against
// the allowlist before anything is written.
func (s *Service) ValidateImage(fh *multipart.FileHeader, maxSize int64) error {
	if fh.Size > maxSize {
		return httperr.ErrValidation("file_too_large",
			fmt.Sprintf("File size too large. Maximum %dMB allowed.", maxSize>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return err
	}

	if !allowedImageTypes[http.DetectContentType(head[:n])] {
		return httperr.ErrValidation("invalid_file_type",
			"Invalid file type. Only JPEG, PNG, and WebP are allowed.")
	}
	return nil
}

// SaveUpload writes the uploaded file under a unique name and returns its
// local path.
func (s *Service) SaveUpload(fh *multipart.FileHeader, category string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := s.Path(category, UniqueName(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *Service) Path(category, filename string) string {
	return filepath.Join(s.root, category, filename)
}

// ProcessImage center-crop fills to the exact dimensions and re-encodes as
// JPEG at the given quality. Output goes through a temp file and a rename so
// a crash cannot leave a partial file. The input is removed on success.
func (s *Service) ProcessImage(inputPath, outputPath string, width, height, quality int) error {
	img, err := decodeImage(inputPath)
	if err != nil {
		return err
	}

	resized := cropResize(img, width, height)

	if err := writeJPEGAtomic(outputPath, resized, quality); err != nil {
		return err
	}

	if inputPath != outputPath {
		os.Remove(inputPath)
	}
	return nil
}

// GenerateThumbnail derives a square thumbnail; the original is preserved.
func (s *Service) GenerateThumbnail(inputPath, outputPath string, size int) error {
	img, err := decodeImage(inputPath)
	if err != nil {
		return err
	}
	return writeJPEGAtomic(outputPath, cropResize(img, size, size), ThumbnailQuality)
}

// DeleteFile is idempotent: a missing file is reported as false, never as an
// error.
func (s *Service) DeleteFile(path string) bool {
	if err := os.Remove(path); err != nil {
		return false
	}
	return true
}

func (s *Service) FileURL(category, filename string) string {
	return fmt.Sprintf("/uploads/%s/%s", category, filename)
}

// Publish makes a processed file reachable by URL. With a remote backend the
// local copy is uploaded and removed; otherwise the static-serve URL is
// returned.
func (s *Service) Publish(ctx context.Context, localPath, category, filename string) (string, error) {
	if s.remote == nil {
		return s.FileURL(category, filename), nil
	}

	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	url, err := s.remote.Upload(ctx, category+"/"+filename, f, "image/jpeg")
	if err != nil {
		return "", err
	}

	os.Remove(localPath)
	return url, nil
}

// Remove deletes a stored file wherever it lives.
func (s *Service) Remove(ctx context.Context, category, filename string) bool {
	if s.remote != nil {
		ok, err := s.remote.Delete(ctx, category+"/"+filename)
		return err == nil && ok
	}
	return s.DeleteFile(s.Path(category, filename))
}

func writeJPEGAtomic(path string, img *image.RGBA, quality int) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".processing-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: quality}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
