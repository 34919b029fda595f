package xmp

import (
	"bytes"
	"sort"
)

// packetID is the fixed magic identifier every XMP packet header carries.
const packetID = "W5M0MpCehiHzreSzNTczkc9d"

// toolName is written into the x:xmptk attribute of the packet.
const toolName = "xmp-writer"

// Writer accumulates XMP properties into a single buffer and tracks which
// namespaces they used. Create one with New, add properties, then call
// Finish exactly once to obtain the packet bytes.
//
// A Writer is not safe for concurrent use. While a Struct or Array scope is
// open, only that scope (or a handle derived from it) may write; using the
// Writer or an outer scope before the inner one is closed panics.
type Writer struct {
	buf        bytes.Buffer
	scratch    []byte
	namespaces map[Namespace]struct{}
	depth      int
	finished   bool
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{
		scratch:    make([]byte, 0, 64),
		namespaces: make(map[Namespace]struct{}),
	}
}

// Element starts a top-level property element. The returned Element must be
// completed with exactly one of its content methods.
func (w *Writer) Element(name string, ns Namespace) Element {
	return w.ElementWithAttrs(name, ns)
}

// ElementWithAttrs starts a top-level property element carrying the given
// attributes. Attribute values are written as entered.
func (w *Writer) ElementWithAttrs(name string, ns Namespace, attrs ...Attr) Element {
	w.mustBeAt(0)
	return startElement(w, name, ns, attrs)
}

// Finish wraps the accumulated properties into a complete XMP packet and
// returns its bytes. The rdf:about attribute of the description is set to
// about, which may be empty. The Writer must not be used afterwards; all
// Struct and Array scopes must already be closed.
func (w *Writer) Finish(about string) []byte {
	w.mustBeAt(0)
	w.finished = true

	var out bytes.Buffer
	out.Grow(512 + w.buf.Len())

	out.WriteString(`<?xpacket begin="` + "\uFEFF" + `" id="` + packetID + `"?>`)
	out.WriteString(`<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="` + toolName + `">`)
	out.WriteString(`<rdf:RDF xmlns:rdf="` + RDF.uri + `">`)
	out.WriteString(`<rdf:Description rdf:about="`)
	escapeString(&out, about)
	out.WriteByte('"')

	for _, ns := range w.usedNamespaces() {
		out.WriteString(` xmlns:`)
		out.WriteString(ns.prefix)
		out.WriteString(`="`)
		out.WriteString(ns.uri)
		out.WriteByte('"')
	}

	out.WriteByte('>')
	out.Write(w.buf.Bytes())
	out.WriteString(`</rdf:Description></rdf:RDF></x:xmpmeta><?xpacket end="r"?>`)
	return out.Bytes()
}

// usedNamespaces returns the usage set minus rdf (declared on rdf:RDF) in
// deterministic order.
func (w *Writer) usedNamespaces() []Namespace {
	used := make([]Namespace, 0, len(w.namespaces))
	for ns := range w.namespaces {
		if ns == RDF {
			continue
		}
		used = append(used, ns)
	}
	sort.Slice(used, func(i, j int) bool { return used[i].less(used[j]) })
	return used
}

// mustBeAt panics unless the writer is unfinished and the current scope
// depth matches. It is the runtime stand-in for exclusive borrowing of the
// shared buffer: child scopes increment the depth, so a stale handle always
// fails this check.
func (w *Writer) mustBeAt(depth int) {
	if w.finished {
		panic("xmp: writer already finished")
	}
	if w.depth != depth {
		if w.depth > depth {
			panic("xmp: a nested struct or array scope is still open")
		}
		panic("xmp: use of a closed struct or array scope")
	}
}
