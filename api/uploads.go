package api

import (
	"context"
	"io"

	"github.com/arenakit/arena/core/client"
)

// UploadedFile describes a stored upload.
type UploadedFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// UploadsService stores user files. Both operations send multipart
// bodies; the transport passes the encoder's content type through so the
// boundary survives.
type UploadsService struct {
	client *client.Client
}

// Upload stores an arbitrary file.
func (s *UploadsService) Upload(ctx context.Context, filename string, body io.Reader) (UploadedFile, error) {
	return s.post(ctx, "upload/", filename, body)
}

// UploadImage stores an image, validated server-side by type and size.
func (s *UploadsService) UploadImage(ctx context.Context, filename string, body io.Reader) (UploadedFile, error) {
	return s.post(ctx, "upload/image/", filename, body)
}

func (s *UploadsService) post(ctx context.Context, path, filename string, body io.Reader) (UploadedFile, error) {
	form, contentType, err := encodeFileForm(filename, body)
	if err != nil {
		return UploadedFile{}, err
	}
	var out UploadedFile
	err = s.client.PostMultipart(ctx, path, form, contentType, &out)
	return out, err
}
