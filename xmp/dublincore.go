package xmp

// Dublin Core schema.

// Contributor writes the dc:contributor property: entities responsible for
// contributions to the resource not listed in Creator.
func (w *Writer) Contributor(contributors ...string) *Writer {
	return w.textArray("contributor", DublinCore, Bag, contributors)
}

// Coverage writes the dc:coverage property: the scope of the resource.
func (w *Writer) Coverage(coverage string) *Writer {
	w.Element("coverage", DublinCore).String(coverage)
	return w
}

// Creator writes the dc:creator property: the entities primarily
// responsible for making the resource, in order of precedence.
func (w *Writer) Creator(creators ...string) *Writer {
	return w.textArray("creator", DublinCore, Seq, creators)
}

// Date writes the dc:date property: dates that something happened to the
// resource.
func (w *Writer) Date(dates ...Date) *Writer {
	array := w.Element("date", DublinCore).Array(Seq)
	defer array.Close()
	for _, date := range dates {
		array.Element().Date(date)
	}
	return w
}

// Description writes the dc:description property: an account of the
// resource, possibly in multiple languages.
func (w *Writer) Description(descriptions ...LangAlt) *Writer {
	w.Element("description", DublinCore).LanguageAlternative(descriptions...)
	return w
}

// Format writes the dc:format property: the MIME type of the resource.
func (w *Writer) Format(mime string) *Writer {
	w.Element("format", DublinCore).String(mime)
	return w
}

// Identifier writes the dc:identifier property: an unambiguous reference to
// the resource within a given context.
func (w *Writer) Identifier(id string) *Writer {
	w.Element("identifier", DublinCore).String(id)
	return w
}

// Language writes the dc:language property: languages used in the resource.
func (w *Writer) Language(languages ...LangID) *Writer {
	array := w.Element("language", DublinCore).Array(Bag)
	defer array.Close()
	for _, lang := range languages {
		array.Element().Value(lang)
	}
	return w
}

// Publisher writes the dc:publisher property.
func (w *Writer) Publisher(publishers ...string) *Writer {
	return w.textArray("publisher", DublinCore, Bag, publishers)
}

// Relation writes the dc:relation property: related resources.
func (w *Writer) Relation(relations ...string) *Writer {
	return w.textArray("relation", DublinCore, Bag, relations)
}

// Rights writes the dc:rights property: informal rights statements,
// possibly in multiple languages.
func (w *Writer) Rights(rights ...LangAlt) *Writer {
	w.Element("rights", DublinCore).LanguageAlternative(rights...)
	return w
}

// Source writes the dc:source property: a related resource from which the
// described resource is derived.
func (w *Writer) Source(source string) *Writer {
	w.Element("source", DublinCore).String(source)
	return w
}

// Subject writes the dc:subject property: phrases or keywords that specify
// the topic of the resource.
func (w *Writer) Subject(subjects ...string) *Writer {
	return w.textArray("subject", DublinCore, Bag, subjects)
}

// Title writes the dc:title property: a name given to the resource,
// possibly in multiple languages.
func (w *Writer) Title(titles ...LangAlt) *Writer {
	w.Element("title", DublinCore).LanguageAlternative(titles...)
	return w
}

// Type writes the dc:type property: the nature or genre of the resource.
// Use Format for the MIME type.
func (w *Writer) Type(kinds ...string) *Writer {
	return w.textArray("type", DublinCore, Bag, kinds)
}

// textArray writes a collection property whose items are plain text.
func (w *Writer) textArray(name string, ns Namespace, kind CollectionType, items []string) *Writer {
	array := w.Element(name, ns).Array(kind)
	defer array.Close()
	for _, item := range items {
		array.Element().String(item)
	}
	return w
}
