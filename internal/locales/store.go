package locales

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrijs2005/recruitkit/internal/config"
)

// Store persists locale files and the manifest by file name
// (e.g. "fr.json", "localeConfig.ts").
type Store interface {
	// List returns the names of all files in the store, sorted.
	List(ctx context.Context) ([]string, error)
	// Get returns the file contents or common.ErrorNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put creates or replaces the file.
	Put(ctx context.Context, name string, data []byte) error
}

// FileName returns the locale file name for a language code.
func FileName(code string) string { return code + ".json" }

// CodeFromFileName returns the code of a locale file name and whether the
// name looks like a locale file at all.
func CodeFromFileName(name string) (string, bool) {
	base := path.Base(name)
	if !strings.HasSuffix(base, ".json") {
		return "", false
	}
	return strings.TrimSuffix(base, ".json"), true
}

// NewStore returns the store selected by cfg.LocaleBackend.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.LocaleBackend {
	case "", config.BackendDir:
		return NewDirStore(cfg.LocalesDir), nil
	case config.BackendS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 backend requires a bucket")
		}
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown locale backend %q", cfg.LocaleBackend)
	}
}
