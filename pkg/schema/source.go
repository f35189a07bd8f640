package schema

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Source identifies where a form document originated so loaders can operate
// on files, fs.FS entries or in-memory payloads without leaking
// implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile  SourceKind = "file"
	SourceKindFS    SourceKind = "fs"
	SourceKindBytes SourceKind = "bytes"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// BytesSource carries its payload with it. The name only feeds format
// detection and diagnostics.
type BytesSource struct {
	name string
	data []byte
}

func (s BytesSource) Location() string {
	return s.name
}

func (s BytesSource) Kind() SourceKind {
	return SourceKindBytes
}

// Data returns a copy of the payload.
func (s BytesSource) Data() []byte {
	return append([]byte(nil), s.data...)
}

// SourceFromBytes wraps an in-memory document, e.g. one read from stdin.
func SourceFromBytes(name string, data []byte) BytesSource {
	return BytesSource{name: name, data: append([]byte(nil), data...)}
}

// DetectFormat picks the interchange format for a document. Extensions win;
// otherwise a leading brace means JSON and anything else is read as YAML,
// which also accepts JSON.
func DetectFormat(location string, raw []byte) model.Format {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json", ".yaml", ".yml", ".toml":
		return model.FormatFromPath(location)
	}
	if bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("{")) {
		return model.FormatJSON
	}
	return model.FormatYAML
}
