package xmp

// Adobe PDF schema and the PDF/A and PDF/X identification schemas.

// PDFKeywords writes the pdf:Keywords property: the document's keywords.
func (w *Writer) PDFKeywords(keywords string) *Writer {
	w.Element("Keywords", AdobePDF).String(keywords)
	return w
}

// PDFVersion writes the pdf:PDFVersion property: the version of the PDF
// specification the document conforms to, for example "1.7".
func (w *Writer) PDFVersion(version string) *Writer {
	w.Element("PDFVersion", AdobePDF).String(version)
	return w
}

// Producer writes the pdf:Producer property: the application that converted
// the document to PDF.
func (w *Writer) Producer(producer string) *Writer {
	w.Element("Producer", AdobePDF).String(producer)
	return w
}

// Trapped writes the pdf:Trapped property: whether the document has been
// trapped.
func (w *Writer) Trapped(trapped bool) *Writer {
	w.Element("Trapped", AdobePDF).Boolean(trapped)
	return w
}

// PDFAPart writes the pdfaid:part property: the part of the PDF/A standard
// the document conforms to, for example 2 for PDF/A-2b.
func (w *Writer) PDFAPart(part int64) *Writer {
	w.Element("part", PDFAID).Long(part)
	return w
}

// PDFAConformance writes the pdfaid:conformance property: the conformance
// level of the PDF/A standard, for example "B" for PDF/A-2b.
func (w *Writer) PDFAConformance(conformance string) *Writer {
	w.Element("conformance", PDFAID).String(conformance)
	return w
}

// PDFXVersion writes the pdfxid:GTS_PDFXVersion property: the version of
// the PDF/X standard the document conforms to.
func (w *Writer) PDFXVersion(version string) *Writer {
	w.Element("GTS_PDFXVersion", PDFXID).String(version)
	return w
}

// IDQScheme writes the xmpidq:Scheme property: the scheme of the
// xmp:Identifier property.
func (w *Writer) IDQScheme(scheme string) *Writer {
	w.Element("Scheme", XMPIdq).String(scheme)
	return w
}
