package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore implements Store over the Cloudinary upload API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// Ensure CloudinaryStore implements Store
var _ Store = (*CloudinaryStore)(nil)

// NewCloudinaryStore creates a store from a cloudinary:// connection URL.
func NewCloudinaryStore(cloudinaryURL string) (*CloudinaryStore, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary URL not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload sends the file to the configured folder and returns its delivery URL.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("upload asset: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("upload asset: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete removes an asset by its public ID. A "not found" result is treated
// as success: the asset is already gone.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy asset: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy asset: %s", res.Result)
	}
	return nil
}
