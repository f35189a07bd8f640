// Package loader reads form documents for pkg/schema.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// ErrTooLarge is returned when a document exceeds the configured size.
var ErrTooLarge = errors.New("loader: document too large")

// Loader implements schema.Loader by delegating to file, fs.FS or in-memory
// strategies.
type Loader struct {
	fs       fs.FS
	maxBytes int64
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options schema.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem, maxBytes: options.MaxBytes}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindBytes:
		bytesSrc, ok := src.(schema.BytesSource)
		if !ok {
			return schema.Document{}, fmt.Errorf("loader: unexpected bytes source %T", src)
		}
		data = bytesSrc.Data()
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, err
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return schema.Document{}, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, src.Location(), len(data))
	}

	return schema.NewDocument(src, data)
}
