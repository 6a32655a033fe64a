// Package views wraps a parsed ir.XFile in read-only query
// interfaces: exact-key and structured resource lookup, definition
// lookup, wildcard filtering, and per-line access. Views never mutate
// their backing file, so a single XFileView may be shared by
// concurrent readers.
package views
