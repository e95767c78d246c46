package storage

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted upload, 5 MiB.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrFileTooLarge    = errors.New("file too large (max 5MB)")
	ErrUnsupportedType = errors.New("only image uploads are allowed")
)

// LocalStore saves uploaded images on local disk under a path derived
// from the owner identity, and hands back the public URL that gets
// stored on the owning record.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) *LocalStore {
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ValidateImage rejects uploads before any bytes are written.
func ValidateImage(contentType string, size int64) error {
	if size > MaxImageSize {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrUnsupportedType
	}
	return nil
}

// GenerateFilename builds a collision-resistant name from the upload
// timestamp, a random token and the original extension.
func GenerateFilename(original string) (string, error) {
	token := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, token); err != nil {
		return "", fmt.Errorf("generate filename token: %w", err)
	}
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), hex.EncodeToString(token), ext), nil
}

// SaveImage validates and persists an uploaded image for the given owner
// and returns its public URL.
func (s *LocalStore) SaveImage(owner uuid.UUID, file *multipart.FileHeader) (string, error) {
	if err := ValidateImage(file.Header.Get("Content-Type"), file.Size); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ownerDir := filepath.Join(s.baseDir, owner.String())
	if err := os.MkdirAll(ownerDir, 0755); err != nil {
		return "", err
	}

	filename, err := GenerateFilename(file.Filename)
	if err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(ownerDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, owner.String(), filename), nil
}
