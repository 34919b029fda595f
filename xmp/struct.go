package xmp

// A Struct is an open rdf:parseType="Resource" scope. Field elements are
// added one at a time; Close writes the closing tag of the element the
// struct was opened on. Close is idempotent and should ideally be deferred.
type Struct struct {
	w      *Writer
	name   string
	ns     Namespace
	depth  int
	closed bool
}

// Element starts a field element inside the struct.
func (s *Struct) Element(name string, ns Namespace) Element {
	return s.ElementWithAttrs(name, ns)
}

// ElementWithAttrs starts a field element carrying the given attributes.
func (s *Struct) ElementWithAttrs(name string, ns Namespace, attrs ...Attr) Element {
	s.mustBeOpen()
	return startElement(s.w, name, ns, attrs)
}

// Close ends the struct scope. The struct and the element it was opened on
// share one closing tag.
func (s *Struct) Close() {
	if s.closed {
		return
	}
	s.w.mustBeAt(s.depth)
	s.closed = true
	s.w.depth--
	Element{w: s.w, name: s.name, ns: s.ns}.closeTag()
}

func (s *Struct) mustBeOpen() {
	if s.closed {
		panic("xmp: use of a closed struct scope")
	}
	s.w.mustBeAt(s.depth)
}
