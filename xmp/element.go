package xmp

// An Attr is a name="value" attribute on a property element. Values are
// written as entered; callers are responsible for quoting-safe content.
type Attr struct {
	Name  string
	Value string
}

// An Element is an open property element whose content has not been decided
// yet. Exactly one content method must be called on it: a scalar setter
// closes the element immediately, Object and Array turn it into a scope
// that closes when the returned handle is closed. An Element is single-use.
type Element struct {
	w     *Writer
	name  string
	ns    Namespace
	depth int
}

// startElement writes the opening tag, leaving it unterminated so the next
// operation can choose scalar or container framing, and records the
// element's namespace in the usage set.
func startElement(w *Writer, name string, ns Namespace, attrs []Attr) Element {
	w.buf.WriteByte('<')
	w.buf.WriteString(ns.prefix)
	w.buf.WriteByte(':')
	w.buf.WriteString(name)
	for _, attr := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(attr.Name)
		w.buf.WriteString(`="`)
		w.buf.WriteString(attr.Value)
		w.buf.WriteByte('"')
	}
	w.namespaces[ns] = struct{}{}
	return Element{w: w, name: name, ns: ns, depth: w.depth}
}

// Value completes the element with a scalar and writes the closing tag.
func (e Element) Value(v Value) {
	e.w.mustBeAt(e.depth)
	e.w.buf.WriteByte('>')
	v.appendValue(e.w)
	e.closeTag()
}

// String completes the element with escaped text.
func (e Element) String(v string) { e.Value(Text(v)) }

// Boolean completes the element with the True/False literal.
func (e Element) Boolean(v bool) { e.Value(Boolean(v)) }

// Long completes the element with a decimal integer.
func (e Element) Long(v int64) { e.Value(Integer(v)) }

// Double completes the element with a floating-point number.
func (e Element) Double(v float64) { e.Value(Real(v)) }

// Date completes the element with a date value.
func (e Element) Date(v Date) { e.Value(v) }

// Object turns the element into an RDF struct (rdf:parseType="Resource")
// and returns the scope for its fields. Closing the returned Struct writes
// this element's closing tag.
func (e Element) Object() *Struct {
	e.w.mustBeAt(e.depth)
	e.w.namespaces[RDF] = struct{}{}
	e.w.buf.WriteString(` rdf:parseType="Resource">`)
	e.w.depth++
	return &Struct{w: e.w, name: e.name, ns: e.ns, depth: e.w.depth}
}

// Array turns the element into an RDF collection of the given kind and
// returns the scope for its items. Closing the returned Array writes the
// collection wrapper's closing tag followed by this element's.
func (e Element) Array(kind CollectionType) *Array {
	e.w.mustBeAt(e.depth)
	e.w.namespaces[RDF] = struct{}{}
	e.w.buf.WriteByte('>')
	e.w.buf.WriteString("<rdf:")
	e.w.buf.WriteString(string(kind))
	e.w.buf.WriteByte('>')
	e.w.depth++
	return &Array{w: e.w, kind: kind, name: e.name, ns: e.ns, depth: e.w.depth}
}

// LanguageAlternative completes the element with an Alt array of per-language
// text values. Entries without a language are tagged x-default.
func (e Element) LanguageAlternative(items ...LangAlt) {
	array := e.Array(Alt)
	defer array.Close()
	for _, item := range items {
		lang := item.Lang
		if lang == "" {
			lang = DefaultLang
		}
		array.ElementWithAttrs(Attr{Name: "xml:lang", Value: string(lang)}).String(item.Text)
	}
}

// OrderedArray completes the element with an rdf:Seq of scalar items.
func (e Element) OrderedArray(items ...Value) { e.valueArray(Seq, items) }

// UnorderedArray completes the element with an rdf:Bag of scalar items.
func (e Element) UnorderedArray(items ...Value) { e.valueArray(Bag, items) }

// AlternativeArray completes the element with an rdf:Alt of scalar items.
func (e Element) AlternativeArray(items ...Value) { e.valueArray(Alt, items) }

func (e Element) valueArray(kind CollectionType, items []Value) {
	array := e.Array(kind)
	defer array.Close()
	for _, item := range items {
		array.Element().Value(item)
	}
}

func (e Element) closeTag() {
	e.w.buf.WriteString("</")
	e.w.buf.WriteString(e.ns.prefix)
	e.w.buf.WriteByte(':')
	e.w.buf.WriteString(e.name)
	e.w.buf.WriteByte('>')
}
