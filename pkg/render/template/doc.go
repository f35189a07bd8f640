// Package template defines the engine contract shared by the template-backed
// renderers. The gotemplate subpackage provides the pongo2 implementation.
package template
