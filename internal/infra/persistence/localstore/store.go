// Package localstore persists the session state (cart, favorites) as JSON
// documents under dedicated keys in a gocloud.dev blob bucket. In production
// the bucket is a local directory (fileblob); tests use memblob.
package localstore

import (
	"context"
	"log/slog"

	"herbaciarnia/config"
	"herbaciarnia/internal/domain/lifecycle"
	"herbaciarnia/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// scheme
	_ "gocloud.dev/blob/memblob"  // register the mem:// scheme
	"gocloud.dev/gcerrors"
)

// Store wraps the blob bucket holding the persisted session documents.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured storage bucket.
func New(params Params) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open storage bucket %s", params.Config.Storage.URL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &Store{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// readKey returns the raw document under key, or nil when the key is absent.
func (s *Store) readKey(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

// writeKey replaces the document under key.
func (s *Store) writeKey(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}
