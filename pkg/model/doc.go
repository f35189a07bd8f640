// Package model defines the form configuration tree shared by the builder,
// the validator, the auditor and every code generation backend.
//
// A FormConfig holds an ordered list of entries. Each Entry is either a
// Section (a titled group of fields) or a bare Field placed directly at the
// top level. The interchange format keeps the two untagged and tells them
// apart by the presence of a `fields` property; inside the module the Entry
// variant is explicit so traversal never needs structural probing.
//
// Field extras are typed per field family (choice, number, text, slider,
// rating) with an opaque fallback. ExtraFor is the only place where the open
// interchange map is converted into a typed variant, and Extra.Values is the
// only place where a variant is flattened back.
//
// Every helper in this package treats its inputs as immutable snapshots and
// returns new values; Clone produces a deep copy when callers need one.
package model
