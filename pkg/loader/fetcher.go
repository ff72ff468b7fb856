package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

// ErrRemoteURL is returned by FSFetcher for descriptors that point at a
// network location.
var ErrRemoteURL = errors.New("loader: remote urls are not supported")

// FSFetcher resolves choices-by-url descriptors against a filesystem. Plain
// paths and file:// URLs are read relative to the filesystem root.
type FSFetcher struct {
	FS fs.FS
}

var _ choices.Fetcher = FSFetcher{}

// NewFSFetcher returns a fetcher reading from fsys.
func NewFSFetcher(fsys fs.FS) FSFetcher {
	return FSFetcher{FS: fsys}
}

// Fetch reads the payload the descriptor points at.
func (f FSFetcher) Fetch(ctx context.Context, desc choices.ChoicesByURL) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FS == nil {
		return nil, fmt.Errorf("loader: fetch %q: no filesystem configured", desc.URL)
	}
	name, err := fsPath(desc.URL)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(f.FS, name)
	if err != nil {
		return nil, fmt.Errorf("loader: fetch %q: %w", desc.URL, err)
	}
	return data, nil
}

func fsPath(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("loader: fetch: empty url")
	}
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if parsed.Scheme != "file" {
			return "", fmt.Errorf("%w: %q", ErrRemoteURL, raw)
		}
		trimmed = parsed.Host + parsed.Path
	}
	name := path.Clean(strings.TrimPrefix(trimmed, "/"))
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("loader: fetch: invalid path %q", raw)
	}
	return name, nil
}
