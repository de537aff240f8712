package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relwatch/relwatch/pkg/errors"
)

// Provider supplies release feed documents by project name.
//
// Implementations own fetching, parsing, caching, and their failure modes.
// A Provider must return an error (never a nil Document) when no feed is
// available for the project.
type Provider interface {
	// Get returns the feed document for the named project.
	Get(ctx context.Context, project string) (*Document, error)
}

// DirProvider reads feed documents from a directory of JSON files,
// one `<project>.json` file per project. It is the file-based counterpart
// of a remote update-service client and is what the CLI uses for local
// feeds and fixtures.
type DirProvider struct {
	dir string
}

// NewDirProvider creates a provider reading documents from dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{dir: dir}
}

// Get reads and decodes `<project>.json` from the provider directory.
//
// Returns:
//   - [errors.ErrCodeInvalidProject] if the name fails validation
//   - [errors.ErrCodeProjectNotFound] if no document file exists
//   - [errors.ErrCodeFeedError] if the document cannot be decoded
func (p *DirProvider) Get(ctx context.Context, project string) (*Document, error) {
	if err := errors.ValidateProjectName(project); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(p.dir, project+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeProjectNotFound, "no feed document for project %s", project)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedError, err, "reading feed document for %s", project)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedError, err, "decoding feed document for %s", project)
	}
	if doc.ShortName == "" {
		doc.ShortName = project
	}
	return &doc, nil
}

// String returns the provider's source location for log output.
func (p *DirProvider) String() string {
	return fmt.Sprintf("dir:%s", p.dir)
}
