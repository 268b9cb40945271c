package ports

import (
	"context"
	"io"

	"github.com/bqviet86/cmict-server/internal/model"
)

// S3Storage : для S3
type S3Storage interface {
	PutObject(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
}

type MediaService interface {
	UploadImages(ctx context.Context, files []model.UploadFile) ([]model.Media, error)
}
