package snapshot

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
)

// ErrNotFound is returned by Get for keys that were never stored.
var ErrNotFound = errors.New("snapshot: not found")

// ContentType is the media type of stored snapshots.
const ContentType = "text/html; charset=utf-8"

// Store persists rendered snapshots.
type Store interface {
	// Put stores body under key and returns where it can be found.
	Put(ctx context.Context, key string, body []byte) (location string, err error)

	// Get opens the snapshot stored under key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Kind names the store for logs and metrics ("file", "s3").
	Kind() string
}

// Target is a parsed snapshot destination.
type Target struct {
	// Scheme is "s3" or "file".
	Scheme string

	// Bucket and Key locate an S3 object.
	Bucket string
	Key    string

	// Path is the local file path.
	Path string
}

// String returns the target in URI form.
func (t Target) String() string {
	if t.Scheme == "s3" {
		return "s3://" + t.Bucket + "/" + t.Key
	}
	return t.Path
}

// ParseTarget parses "s3://bucket/key", "file:///path" or a plain path.
func ParseTarget(uri string) (Target, error) {
	switch {
	case uri == "":
		return Target{}, tterrors.New("T030").WithDetail("empty snapshot destination")
	case strings.HasPrefix(uri, "s3://"):
		bucket, key, _ := strings.Cut(strings.TrimPrefix(uri, "s3://"), "/")
		if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
			return Target{}, tterrors.New("T030").
				WithDetailf("%q must name a bucket and an object key", uri).
				WithSuggestion("Use s3://bucket/path/to/file.html")
		}
		return Target{Scheme: "s3", Bucket: bucket, Key: key}, nil
	case strings.HasPrefix(uri, "file://"):
		return Target{Scheme: "file", Path: filepath.FromSlash(strings.TrimPrefix(uri, "file://"))}, nil
	case strings.Contains(uri, "://"):
		scheme, _, _ := strings.Cut(uri, "://")
		return Target{}, tterrors.New("T030").WithDetailf("unsupported scheme %q", scheme)
	}
	return Target{Scheme: "file", Path: uri}, nil
}

// Options configures stores built by ForTarget.
type Options struct {
	// S3 client settings; see NewS3Client.
	Region    string
	Endpoint  string
	PathStyle bool

	// Client overrides the S3 client, e.g. in tests.
	Client S3API
}

// ForTarget returns a store able to hold t and the key to store it under.
func ForTarget(t Target, opts Options) (Store, string, error) {
	switch t.Scheme {
	case "s3":
		client := opts.Client
		if client == nil {
			client = NewS3Client(S3ClientOptions{
				Region:    opts.Region,
				Endpoint:  opts.Endpoint,
				PathStyle: opts.PathStyle,
			})
		}
		return NewS3Store(client, t.Bucket, ""), t.Key, nil
	case "file":
		dir, name := filepath.Split(t.Path)
		if name == "" {
			return nil, "", tterrors.New("T030").WithDetailf("%q is a directory, not a file", t.Path)
		}
		if dir == "" {
			dir = "."
		}
		return NewFileStore(dir), name, nil
	}
	return nil, "", tterrors.New("T030").WithDetailf("unsupported target scheme %q", t.Scheme)
}
