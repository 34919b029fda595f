// Package xmp writes XMP metadata packets incrementally.
//
// A Writer accumulates properties into a single buffer. Scalar properties
// are written in one call; complex properties (RDF structs and arrays)
// return a scoped handle that must be closed before the parent may be used
// again. The close should ideally be called as a defer statement.
//
// Namespaces are collected as properties are written, and the final packet
// declares exactly the set that was used. Call Finish to obtain the packet
// bytes; the Writer must not be used afterwards.
package xmp
