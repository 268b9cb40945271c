package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/google/uuid"
)

const imageField = "image"

type MediaService struct {
	storage     ports.S3Storage
	maxFiles    int
	maxFileSize int64
}

func NewMediaService(storage ports.S3Storage, maxFiles int, maxFileSize int64) *MediaService {
	return &MediaService{storage: storage, maxFiles: maxFiles, maxFileSize: maxFileSize}
}

// UploadImages проверяет все файлы до загрузки: при любой ошибке валидации в S3 ничего не пишется
func (s *MediaService) UploadImages(ctx context.Context, files []model.UploadFile) ([]model.Media, error) {
	if len(files) == 0 {
		return nil, apperror.ValidationField(imageField, "is required")
	}
	if len(files) > s.maxFiles {
		return nil, apperror.ValidationField(imageField, fmt.Sprintf("at most %d files are allowed", s.maxFiles))
	}

	for _, file := range files {
		if !strings.HasPrefix(file.ContentType, "image/") {
			return nil, apperror.ValidationField(imageField, fmt.Sprintf("%s is not an image", file.Filename))
		}
		if file.Size > s.maxFileSize {
			return nil, apperror.ValidationField(imageField, fmt.Sprintf("%s exceeds %d bytes", file.Filename, s.maxFileSize))
		}
	}

	result := make([]model.Media, 0, len(files))
	for _, file := range files {
		key := "images/" + uuid.NewString() + imageExtension(file)

		url, err := s.storage.PutObject(ctx, key, file.ContentType, file.Size, file.Content)
		if err != nil {
			return nil, err
		}

		result = append(result, model.Media{URL: url, Type: model.MediaTypeImage})
	}

	return result, nil
}

func imageExtension(file model.UploadFile) string {
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != "" {
		return ext
	}
	if exts, err := mime.ExtensionsByType(file.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
