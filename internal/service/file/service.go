package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAvatar stores a profile picture and returns its public URL.
	UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

var allowedAvatarExts = []string{".jpg", ".jpeg", ".png"}

func (s *fileServiceImpl) UploadAvatar(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	valid := false
	for _, allowed := range allowedAvatarExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	path := filepath.Join("avatars", userID, uuid.NewString()+ext)
	storedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url, err := s.storage.GetURL(ctx, storedPath, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to build avatar url: %w", err)
	}
	return url, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
