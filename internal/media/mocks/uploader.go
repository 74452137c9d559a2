package mocks

import (
	"context"

	"github.com/Chimelu/hafak-surgicals-backend/internal/media"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type Uploader struct {
	mock.Mock
}

func (m *Uploader) Upload(ctx context.Context, file *media.File) (*models.UploadedImage, error) {
	args := m.Called(ctx, file)
	image, _ := args.Get(0).(*models.UploadedImage)
	return image, args.Error(1)
}
