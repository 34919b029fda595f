package xmp

// PDF/A extension schema descriptions. PDF/A requires that any metadata
// property outside of its predefined schemas is described by an extension
// schema embedded in the packet. Check PDF/A-1 TechNote 0008 to learn which
// schemas and properties need to be described.

// ExtensionSchemas starts the pdfaExtension:schemas property. The returned
// writer must be closed.
func (w *Writer) ExtensionSchemas() *ExtensionSchemasWriter {
	return &ExtensionSchemasWriter{w.Element("schemas", PDFAExtension).Array(Bag)}
}

// ExtensionSchemasWriter writes a set of extension schema descriptions.
// Created by Writer.ExtensionSchemas.
type ExtensionSchemasWriter struct {
	*Array
}

// AddSchema starts describing a schema.
func (e *ExtensionSchemasWriter) AddSchema() *ExtensionSchemaWriter {
	return &ExtensionSchemaWriter{e.Element().Object()}
}

// DescribePDFAID describes the pdfaid schema. If corrigendum is true, the
// pdfaid:corr property is included.
func (e *ExtensionSchemasWriter) DescribePDFAID(corrigendum bool) *ExtensionSchemasWriter {
	schema := e.AddSchema()
	schema.Namespace(PDFAID)
	properties := schema.Properties()

	properties.AddProperty().
		Category(true).
		Description("Part of PDF/A standard").
		Name("part").
		ValueType("Integer").
		Close()

	properties.AddProperty().
		Category(true).
		Description("Amendment of PDF/A standard").
		Name("amd").
		ValueType("Text").
		Close()

	if corrigendum {
		properties.AddProperty().
			Category(true).
			Description("Corrigendum of PDF/A standard").
			Name("corr").
			ValueType("Text").
			Close()
	}

	properties.AddProperty().
		Category(true).
		Description("Conformance level of PDF/A standard").
		Name("conformance").
		ValueType("Text").
		Close()

	properties.Close()
	schema.Close()
	return e
}

// PDF starts describing the Adobe PDF schema.
func (e *ExtensionSchemasWriter) PDF() *AdobePDFSchemaWriter {
	schema := e.AddSchema()
	schema.Namespace(AdobePDF)
	return &AdobePDFSchemaWriter{schema}
}

// XMP starts describing the XMP Basic schema.
func (e *ExtensionSchemasWriter) XMP() *XMPSchemaWriter {
	schema := e.AddSchema()
	schema.Namespace(XMPBasic)
	return &XMPSchemaWriter{schema}
}

// MediaManagement starts describing the XMP Media Management schema.
func (e *ExtensionSchemasWriter) MediaManagement() *MediaSchemaWriter {
	schema := e.AddSchema()
	schema.Namespace(XMPMedia)
	return &MediaSchemaWriter{schema}
}

// ExtensionSchemaWriter describes a single extension schema. Created by
// ExtensionSchemasWriter.AddSchema.
type ExtensionSchemaWriter struct {
	*Struct
}

// Namespace writes the pdfaSchema:schema, pdfaSchema:namespaceURI, and
// pdfaSchema:prefix properties, extracted from the given namespace.
func (e *ExtensionSchemaWriter) Namespace(ns Namespace) *ExtensionSchemaWriter {
	e.Element("schema", PDFASchema).String(ns.Name() + " schema")
	e.Element("namespaceURI", PDFASchema).String(ns.URI())
	e.Element("prefix", PDFASchema).String(ns.Prefix())
	return e
}

// Properties starts the pdfaSchema:property sequence, which describes the
// properties of the schema. The returned writer must be closed.
func (e *ExtensionSchemaWriter) Properties() *ExtensionPropertiesWriter {
	return &ExtensionPropertiesWriter{e.Element("property", PDFASchema).Array(Seq)}
}

// ValueTypes starts the pdfaSchema:valueType sequence, which describes the
// value types of the schema. The returned writer must be closed.
func (e *ExtensionSchemaWriter) ValueTypes() *ExtensionTypesWriter {
	return &ExtensionTypesWriter{e.Element("valueType", PDFASchema).Array(Seq)}
}

// ExtensionPropertiesWriter writes an array of extension schema property
// descriptions. Created by ExtensionSchemaWriter.Properties.
type ExtensionPropertiesWriter struct {
	*Array
}

// AddProperty starts describing a property.
func (e *ExtensionPropertiesWriter) AddProperty() *ExtensionPropertyWriter {
	return &ExtensionPropertyWriter{e.Element().Object()}
}

// ExtensionPropertyWriter describes a property of an extension schema.
// Created by ExtensionPropertiesWriter.AddProperty.
type ExtensionPropertyWriter struct {
	*Struct
}

// Name writes the pdfaProperty:name property.
func (e *ExtensionPropertyWriter) Name(name string) *ExtensionPropertyWriter {
	e.Element("name", PDFAProperty).String(name)
	return e
}

// ValueType writes the pdfaProperty:valueType property. Shall either be
// defined in the XMP specification or in the extension schema.
func (e *ExtensionPropertyWriter) ValueType(valueType string) *ExtensionPropertyWriter {
	e.Element("valueType", PDFAProperty).String(valueType)
	return e
}

// Category writes the pdfaProperty:category property: whether the property
// is generated from the document's contents (internal) or input by the user
// (external).
func (e *ExtensionPropertyWriter) Category(internal bool) *ExtensionPropertyWriter {
	category := "external"
	if internal {
		category = "internal"
	}
	e.Element("category", PDFAProperty).String(category)
	return e
}

// Description writes the pdfaProperty:description property.
func (e *ExtensionPropertyWriter) Description(description string) *ExtensionPropertyWriter {
	e.Element("description", PDFAProperty).String(description)
	return e
}

// ExtensionTypesWriter writes an array of extension schema value type
// descriptions. Created by ExtensionSchemaWriter.ValueTypes.
type ExtensionTypesWriter struct {
	*Array
}

// AddValueType starts describing a value type.
func (e *ExtensionTypesWriter) AddValueType() *ExtensionTypeWriter {
	return &ExtensionTypeWriter{e.Element().Object()}
}

// ExtensionTypeWriter describes a value type of an extension schema.
// Created by ExtensionTypesWriter.AddValueType.
type ExtensionTypeWriter struct {
	*Struct
}

// Name writes the pdfaType:type property: the name of the value type.
func (e *ExtensionTypeWriter) Name(name string) *ExtensionTypeWriter {
	e.Element("type", PDFAType).String(name)
	return e
}

// Namespace writes the pdfaType:namespaceURI and pdfaType:prefix
// properties, extracted from the given namespace.
func (e *ExtensionTypeWriter) Namespace(ns Namespace) *ExtensionTypeWriter {
	e.NamespaceURI(ns.URI())
	e.Prefix(ns.Prefix())
	return e
}

// NamespaceURI writes the pdfaType:namespaceURI property. Consider calling
// Namespace instead.
func (e *ExtensionTypeWriter) NamespaceURI(uri string) *ExtensionTypeWriter {
	e.Element("namespaceURI", PDFAType).String(uri)
	return e
}

// Prefix writes the pdfaType:prefix property. Consider calling Namespace
// instead.
func (e *ExtensionTypeWriter) Prefix(prefix string) *ExtensionTypeWriter {
	e.Element("prefix", PDFAType).String(prefix)
	return e
}

// Description writes the pdfaType:description property.
func (e *ExtensionTypeWriter) Description(description string) *ExtensionTypeWriter {
	e.Element("description", PDFAType).String(description)
	return e
}

// Fields starts the pdfaType:field sequence, which describes the fields of
// the value type. The returned writer must be closed.
func (e *ExtensionTypeWriter) Fields() *ExtensionFieldsWriter {
	return &ExtensionFieldsWriter{e.Element("field", PDFAType).Array(Seq)}
}

// ExtensionFieldsWriter writes an array of value type field descriptions.
// Created by ExtensionTypeWriter.Fields.
type ExtensionFieldsWriter struct {
	*Array
}

// AddField starts describing a field.
func (e *ExtensionFieldsWriter) AddField() *ExtensionFieldWriter {
	return &ExtensionFieldWriter{e.Element().Object()}
}

// ExtensionFieldWriter describes a field of an extension schema value type.
// Created by ExtensionFieldsWriter.AddField.
type ExtensionFieldWriter struct {
	*Struct
}

// Name writes the pdfaField:name property.
func (e *ExtensionFieldWriter) Name(name string) *ExtensionFieldWriter {
	e.Element("name", PDFAField).String(name)
	return e
}

// ValueType writes the pdfaField:valueType property. Shall either be
// defined in the XMP specification or in the extension schema.
func (e *ExtensionFieldWriter) ValueType(valueType string) *ExtensionFieldWriter {
	e.Element("valueType", PDFAField).String(valueType)
	return e
}

// Description writes the pdfaField:description property.
func (e *ExtensionFieldWriter) Description(description string) *ExtensionFieldWriter {
	e.Element("description", PDFAField).String(description)
	return e
}

// AdobePDFSchemaWriter describes the Adobe PDF extension schema. Created by
// ExtensionSchemasWriter.PDF.
type AdobePDFSchemaWriter struct {
	*ExtensionSchemaWriter
}

// Properties starts describing the properties of the pdf schema. The
// returned writer must be closed.
func (a *AdobePDFSchemaWriter) Properties() *AdobePDFPropertiesWriter {
	return &AdobePDFPropertiesWriter{a.ExtensionSchemaWriter.Properties()}
}

// AdobePDFPropertiesWriter writes the property descriptions of the pdf
// schema. Created by AdobePDFSchemaWriter.Properties.
type AdobePDFPropertiesWriter struct {
	*ExtensionPropertiesWriter
}

// DescribeKeywords describes the pdf:Keywords property. Optional even if
// the property is present, see PDF/A-1 TechNote 0008.
func (a *AdobePDFPropertiesWriter) DescribeKeywords() *AdobePDFPropertiesWriter {
	a.AddProperty().
		Category(false).
		Description("Keywords associated with the document").
		Name("Keywords").
		ValueType("Text").
		Close()
	return a
}

// DescribePDFVersion describes the pdf:PDFVersion property. Optional even
// if the property is present, see PDF/A-1 TechNote 0008.
func (a *AdobePDFPropertiesWriter) DescribePDFVersion() *AdobePDFPropertiesWriter {
	a.AddProperty().
		Category(true).
		Description("Version of the PDF specification to which the document conforms").
		Name("PDFVersion").
		ValueType("Text").
		Close()
	return a
}

// DescribeProducer describes the pdf:Producer property. Optional even if
// the property is present, see PDF/A-1 TechNote 0008.
func (a *AdobePDFPropertiesWriter) DescribeProducer() *AdobePDFPropertiesWriter {
	a.AddProperty().
		Category(true).
		Description("Name of the application that created the PDF document").
		Name("Producer").
		ValueType("Text").
		Close()
	return a
}

// DescribeTrapped describes the pdf:Trapped property.
func (a *AdobePDFPropertiesWriter) DescribeTrapped() *AdobePDFPropertiesWriter {
	a.AddProperty().
		Category(true).
		Description("Whether the document has been trapped").
		Name("Trapped").
		ValueType("Text").
		Close()
	return a
}

// XMPSchemaWriter describes the XMP Basic extension schema. Created by
// ExtensionSchemasWriter.XMP. Only covers properties that were added to the
// schema in XMP 2005 or later.
type XMPSchemaWriter struct {
	*ExtensionSchemaWriter
}

// Properties starts describing the properties of the xmp schema. The
// returned writer must be closed.
func (x *XMPSchemaWriter) Properties() *XMPPropertiesWriter {
	return &XMPPropertiesWriter{x.ExtensionSchemaWriter.Properties()}
}

// XMPPropertiesWriter writes the property descriptions of the xmp schema.
// Created by XMPSchemaWriter.Properties.
type XMPPropertiesWriter struct {
	*ExtensionPropertiesWriter
}

// DescribeLabel describes the xmp:Label property.
func (x *XMPPropertiesWriter) DescribeLabel() *XMPPropertiesWriter {
	x.AddProperty().
		Category(false).
		Description("A user-defined label for the resource").
		Name("Label").
		ValueType("Text").
		Close()
	return x
}

// DescribeRating describes the xmp:Rating property.
func (x *XMPPropertiesWriter) DescribeRating() *XMPPropertiesWriter {
	x.AddProperty().
		Category(false).
		Description("A user-assigned rating of the resource").
		Name("Rating").
		ValueType("Integer").
		Close()
	return x
}

// MediaSchemaWriter describes the XMP Media Management extension schema.
// Created by ExtensionSchemasWriter.MediaManagement.
type MediaSchemaWriter struct {
	*ExtensionSchemaWriter
}

// Properties starts describing the properties of the xmpMM schema. The
// returned writer must be closed.
func (m *MediaSchemaWriter) Properties() *MediaPropertiesWriter {
	return &MediaPropertiesWriter{m.ExtensionSchemaWriter.Properties()}
}

// MediaPropertiesWriter writes the property descriptions of the xmpMM
// schema. Created by MediaSchemaWriter.Properties.
type MediaPropertiesWriter struct {
	*ExtensionPropertiesWriter
}

// DescribeInstanceID describes the xmpMM:InstanceID property.
func (m *MediaPropertiesWriter) DescribeInstanceID() *MediaPropertiesWriter {
	m.AddProperty().
		Category(true).
		Description("UUID based identifier for specific incarnation of a document").
		Name("InstanceID").
		ValueType("Text").
		Close()
	return m
}

// DescribeIngredients describes the xmpMM:Ingredients property.
func (m *MediaPropertiesWriter) DescribeIngredients() *MediaPropertiesWriter {
	m.AddProperty().
		Category(true).
		Description("List of ingredients that were used to create a document").
		Name("Ingredients").
		ValueType("ResourceRef").
		Close()
	return m
}

// DescribeOriginalDocumentID describes the xmpMM:OriginalDocumentID
// property.
func (m *MediaPropertiesWriter) DescribeOriginalDocumentID() *MediaPropertiesWriter {
	m.AddProperty().
		Category(true).
		Description("UUID based identifier for original document from which a document is derived").
		Name("OriginalDocumentID").
		ValueType("Text").
		Close()
	return m
}

// DescribePantry describes the xmpMM:Pantry property.
func (m *MediaPropertiesWriter) DescribePantry() *MediaPropertiesWriter {
	m.AddProperty().
		Category(true).
		Description("List of ingredients that were used to create a document").
		Name("Pantry").
		ValueType("ResourceRef").
		Close()
	return m
}
