package media

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Store is the remote media host: upload a file and get back a public
// delivery URL, or delete a previously uploaded asset by its identifier.
type Store interface {
	Upload(ctx context.Context, file io.Reader, folder string) (url string, err error)
	Delete(ctx context.Context, publicID string) error
}

// disabledStore is used when no media host is configured: uploads are
// refused, deletes are silently skipped.
type disabledStore struct{}

// Disabled returns a Store for deployments without a media host.
func Disabled() Store {
	return disabledStore{}
}

func (disabledStore) Upload(context.Context, io.Reader, string) (string, error) {
	return "", errors.New("media host not configured")
}

func (disabledStore) Delete(context.Context, string) error {
	return nil
}

// DeleteByURL derives the asset identifier from a stored delivery URL and
// deletes the remote asset, best effort. The outcome is logged and discarded:
// a failed remote deletion must never block the database mutation that
// triggered it.
func DeleteByURL(ctx context.Context, store Store, rawURL string, log *slog.Logger) {
	if store == nil || rawURL == "" {
		return
	}
	publicID := PublicIDFromURL(rawURL)
	if publicID == "" {
		return
	}
	if err := store.Delete(ctx, publicID); err != nil {
		log.Warn("remote asset deletion failed", "public_id", publicID, "error", err)
		return
	}
	log.Info("remote asset deleted", "public_id", publicID)
}
