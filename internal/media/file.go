package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/Chimelu/hafak-surgicals-backend/internal/metrics"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxFileSize    = 5 * 1024 * 1024
	Folder         = "hafak-surgicals"
	Transformation = "c_limit,h_600,w_800/q_auto,f_auto"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file exceeds the 5MB limit")
	ErrNoFile   = errors.New("no image file provided")
)

// File is an uploaded file held in memory.
type File struct {
	FieldName string
	Filename  string
	MimeType  string
	Size      int64
	Data      []byte
}

// Validate rejects oversized files and anything that is not an image. A
// missing or generic declared type is replaced by the type sniffed from the
// content.
func Validate(file *File) error {
	if file.Size > MaxFileSize || int64(len(file.Data)) > MaxFileSize {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return ErrTooLarge
	}

	declared := strings.TrimSpace(strings.ToLower(file.MimeType))
	if declared == "" || declared == "application/octet-stream" {
		declared = mimetype.Detect(file.Data).String()
		file.MimeType = declared
	}

	if !strings.HasPrefix(declared, "image/") {
		metrics.ImageUploads.WithLabelValues("rejected").Inc()
		return ErrNotImage
	}

	return nil
}

// ValidateAll stops at the first rejected file.
func ValidateAll(files []*File) error {
	for _, file := range files {
		if err := Validate(file); err != nil {
			return err
		}
	}

	return nil
}

// FirstImage returns the first file whose type is an image, or nil.
func FirstImage(files []*File) *File {
	for _, file := range files {
		if strings.HasPrefix(file.MimeType, "image/") {
			return file
		}
	}

	return nil
}

// FilesFromMultipart reads every file part of the form. Files larger than
// MaxFileSize are read only far enough to know they are too large.
func FilesFromMultipart(form *multipart.Form) ([]*File, error) {
	if form == nil {
		return nil, nil
	}

	var files []*File

	for field, headers := range form.File {
		for _, header := range headers {
			file, err := readPart(field, header)
			if err != nil {
				return nil, err
			}

			files = append(files, file)
		}
	}

	return files, nil
}

func readPart(field string, header *multipart.FileHeader) (*File, error) {
	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %s: %w", header.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", header.Filename, err)
	}

	size := header.Size
	if size < int64(len(data)) {
		size = int64(len(data))
	}

	return &File{
		FieldName: field,
		Filename:  header.Filename,
		MimeType:  header.Header.Get("Content-Type"),
		Size:      size,
		Data:      data,
	}, nil
}
