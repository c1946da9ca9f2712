/*
Package storage provides a narrow client for the bucket that holds the daily
digest objects. The bucket is written out-of-band by the ingestion job; this
client only ever reads.

Keys are plain strings of the form "YYYY-MM-DD/summary.json". Absence of a
key is an expected outcome and is reported as a NotFound-kind error so that
callers can tell it apart from transport failures.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// This sets up the plumbing to use blob with the local file system in development mode.
	_ "gocloud.dev/blob/fileblob"
	// This sets up the plumbing to use blob with S3 in production.
	_ "gocloud.dev/blob/s3blob"

	"github.com/techdigest/api/errors"
	"github.com/techdigest/api/log"
)

// Client is the capability the rest of the app has against the digest
// bucket: read one object, list the dated prefixes. No retries, no caching,
// no local state.
type Client interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
	ListPrefixes(ctx context.Context) ([]string, error)
}

type clientImpl struct {
	bucketURL string
}

// NewClient returns a Client against the bucket at the given gocloud URL,
// e.g. "s3://tech-digest?region=us-east-1". An empty URL falls back to a
// local directory for development.
func NewClient(bucketURL string) Client {
	if bucketURL == "" {
		return &clientImpl{bucketURL: initLocalStorageDir()}
	}

	return &clientImpl{bucketURL: bucketURL}
}

func initLocalStorageDir() string {
	op := errors.Op("storage.initLocalStorageDir")

	localpath, err := filepath.Abs("./.local-object-store/")
	if err != nil {
		panic(errors.E(op, errors.MissingConfig, err))
	}

	fp := fmt.Sprintf("file://%s", localpath)

	log.Printf("storage.initLocalStorageDir: Creating temporary bucket storage at %s", fp)
	if err := os.MkdirAll(localpath, 0777); err != nil {
		panic(errors.E(op, errors.MissingConfig, err))
	}

	return fp
}

// GetObject reads the object at key in a single call.
func (c *clientImpl) GetObject(ctx context.Context, key string) ([]byte, error) {
	op := errors.Opf("storage.GetObject(%q)", key)

	b, err := blob.OpenBucket(ctx, c.bucketURL)
	if err != nil {
		return nil, errors.E(op, errors.StoreUnavailable, err)
	}
	defer b.Close()

	payload, err := b.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.E(op, errors.NotFound, err)
		}

		return nil, errors.E(op, errors.StoreUnavailable, err)
	}

	return payload, nil
}

// ListPrefixes returns the top-level "directory" names of the bucket, one
// per ingested day, without trailing slashes.
func (c *clientImpl) ListPrefixes(ctx context.Context) ([]string, error) {
	op := errors.Op("storage.ListPrefixes")

	b, err := blob.OpenBucket(ctx, c.bucketURL)
	if err != nil {
		return nil, errors.E(op, errors.StoreUnavailable, err)
	}
	defer b.Close()

	var prefixes []string

	iter := b.List(&blob.ListOptions{Delimiter: "/"})

	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.E(op, errors.StoreUnavailable, err)
		}

		if obj.IsDir {
			prefixes = append(prefixes, strings.TrimSuffix(obj.Key, "/"))
		}
	}

	return prefixes, nil
}
