package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var ErrUploadsDisabled = errors.New("image uploads are not configured")

// UploaderService pushes reference images to Cloudinary. A nil client means
// the feature is degraded, not broken: callers fall back to accepting bare
// URLs.
type UploaderService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewUploaderService(cld *cloudinary.Cloudinary, folder string) *UploaderService {
	if folder == "" {
		folder = "lade-studio"
	}
	return &UploaderService{cld: cld, folder: folder}
}

func (s *UploaderService) Enabled() bool {
	return s.cld != nil
}

func (s *UploaderService) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	if s.cld == nil {
		return "", ErrUploadsDisabled
	}

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	return resp.SecureURL, nil
}
