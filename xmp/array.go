package xmp

// An Array is an open rdf:Seq, rdf:Bag or rdf:Alt scope. Every item is an
// rdf:li element. Close writes the collection wrapper's closing tag and
// then the closing tag of the element the array was opened on. Close is
// idempotent and should ideally be deferred.
type Array struct {
	w      *Writer
	kind   CollectionType
	name   string
	ns     Namespace
	depth  int
	closed bool
}

// Element starts the next rdf:li item.
func (a *Array) Element() Element {
	return a.ElementWithAttrs()
}

// ElementWithAttrs starts the next rdf:li item carrying the given
// attributes, typically xml:lang in language-alternative arrays.
func (a *Array) ElementWithAttrs(attrs ...Attr) Element {
	a.mustBeOpen()
	return startElement(a.w, "li", RDF, attrs)
}

// Close ends the array scope.
func (a *Array) Close() {
	if a.closed {
		return
	}
	a.w.mustBeAt(a.depth)
	a.closed = true
	a.w.depth--
	a.w.buf.WriteString("</rdf:")
	a.w.buf.WriteString(string(a.kind))
	a.w.buf.WriteByte('>')
	Element{w: a.w, name: a.name, ns: a.ns}.closeTag()
}

func (a *Array) mustBeOpen() {
	if a.closed {
		panic("xmp: use of a closed array scope")
	}
	a.w.mustBeAt(a.depth)
}
