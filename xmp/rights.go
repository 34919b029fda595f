package xmp

// XMP Rights Management schema.

// Certificate writes the xmpRights:Certificate property: a URL with a
// rights management certificate.
func (w *Writer) Certificate(cert string) *Writer {
	w.Element("Certificate", XMPRights).String(cert)
	return w
}

// Marked writes the xmpRights:Marked property: whether the resource is
// rights managed. If false, the resource is in the public domain.
func (w *Writer) Marked(marked bool) *Writer {
	w.Element("Marked", XMPRights).Boolean(marked)
	return w
}

// Owner writes the xmpRights:Owner property: people or organizations
// owning the resource.
func (w *Writer) Owner(owners ...string) *Writer {
	return w.textArray("Owner", XMPRights, Bag, owners)
}

// UsageTerms writes the xmpRights:UsageTerms property: under what
// conditions the resource may be used.
func (w *Writer) UsageTerms(terms ...LangAlt) *Writer {
	w.Element("UsageTerms", XMPRights).LanguageAlternative(terms...)
	return w
}

// WebStatement writes the xmpRights:WebStatement property: a URL with a
// rights management statement.
func (w *Writer) WebStatement(statement string) *Writer {
	w.Element("WebStatement", XMPRights).String(statement)
	return w
}
