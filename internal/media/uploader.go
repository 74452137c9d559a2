package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/metrics"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploaderDisabled = errors.New("media host is not configured")

// Uploader stores an accepted image on the media host.
type Uploader interface {
	Upload(ctx context.Context, file *File) (*models.UploadedImage, error)
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewUploader returns a Cloudinary-backed uploader, or one that always fails
// with ErrUploaderDisabled when no credentials are configured.
func NewUploader(cfg config.Cloudinary) (Uploader, error) {
	if !cfg.Enabled() {
		return disabledUploader{}, nil
	}

	var (
		cld *cloudinary.Cloudinary
		err error
	)

	if cfg.URL != "" {
		cld, err = cloudinary.NewFromURL(cfg.URL)
	} else {
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	}

	if err != nil {
		return nil, fmt.Errorf("configuring cloudinary: %w", err)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = Folder
	}

	return &cloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file *File) (*models.UploadedImage, error) {
	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(file.Data), uploader.UploadParams{
		Folder:         u.folder,
		Transformation: Transformation,
	})
	if err != nil {
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("uploading %s: %w", file.Filename, err)
	}

	if resp.Error.Message != "" {
		metrics.ImageUploads.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("uploading %s: %s", file.Filename, resp.Error.Message)
	}

	metrics.ImageUploads.WithLabelValues("success").Inc()

	return &models.UploadedImage{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
		Size:     resp.Bytes,
	}, nil
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, *File) (*models.UploadedImage, error) {
	metrics.ImageUploads.WithLabelValues("failed").Inc()
	return nil, ErrUploaderDisabled
}
