package xmp_test

import (
	"strings"
	"testing"

	"github.com/typst/xmp-writer/xmp"
)

func TestExtensionSchemaStructure(t *testing.T) {
	w := xmp.New()

	schemas := w.ExtensionSchemas()
	schema := schemas.AddSchema()
	schema.Namespace(xmp.NewNamespace("print", "https://print.example.com/ns/"))

	properties := schema.Properties()
	properties.AddProperty().
		Category(false).
		Description("The proofing mode").
		Name("proof").
		ValueType("ProofMode").
		Close()
	properties.Close()

	types := schema.ValueTypes()
	kind := types.AddValueType()
	kind.Name("ProofMode").
		Namespace(xmp.NewNamespace("printType", "https://print.example.com/ns/type/")).
		Description("A proofing mode")
	fields := kind.Fields()
	fields.AddField().
		Name("screen").
		ValueType("Boolean").
		Description("Whether to proof on screen").
		Close()
	fields.Close()
	kind.Close()
	types.Close()

	schema.Close()
	schemas.Close()

	expect := `<pdfaExtension:schemas><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<pdfaSchema:schema>print schema</pdfaSchema:schema>` +
		`<pdfaSchema:namespaceURI>https://print.example.com/ns/</pdfaSchema:namespaceURI>` +
		`<pdfaSchema:prefix>print</pdfaSchema:prefix>` +
		`<pdfaSchema:property><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<pdfaProperty:category>external</pdfaProperty:category>` +
		`<pdfaProperty:description>The proofing mode</pdfaProperty:description>` +
		`<pdfaProperty:name>proof</pdfaProperty:name>` +
		`<pdfaProperty:valueType>ProofMode</pdfaProperty:valueType>` +
		`</rdf:li>` +
		`</rdf:Seq></pdfaSchema:property>` +
		`<pdfaSchema:valueType><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<pdfaType:type>ProofMode</pdfaType:type>` +
		`<pdfaType:namespaceURI>https://print.example.com/ns/type/</pdfaType:namespaceURI>` +
		`<pdfaType:prefix>printType</pdfaType:prefix>` +
		`<pdfaType:description>A proofing mode</pdfaType:description>` +
		`<pdfaType:field><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<pdfaField:name>screen</pdfaField:name>` +
		`<pdfaField:valueType>Boolean</pdfaField:valueType>` +
		`<pdfaField:description>Whether to proof on screen</pdfaField:description>` +
		`</rdf:li>` +
		`</rdf:Seq></pdfaType:field>` +
		`</rdf:li>` +
		`</rdf:Seq></pdfaSchema:valueType>` +
		`</rdf:li>` +
		`</rdf:Bag></pdfaExtension:schemas>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestDescribePDFAID(t *testing.T) {
	w := xmp.New()

	schemas := w.ExtensionSchemas()
	schemas.DescribePDFAID(true)
	schemas.Close()

	got := body(t, w.Finish(""))
	for _, fragment := range []string{
		`<pdfaSchema:schema>PDF/A Identification schema</pdfaSchema:schema>`,
		`<pdfaSchema:namespaceURI>http://www.aiim.org/pdfa/ns/id/</pdfaSchema:namespaceURI>`,
		`<pdfaSchema:prefix>pdfaid</pdfaSchema:prefix>`,
		`<pdfaProperty:name>part</pdfaProperty:name>`,
		`<pdfaProperty:name>amd</pdfaProperty:name>`,
		`<pdfaProperty:name>corr</pdfaProperty:name>`,
		`<pdfaProperty:name>conformance</pdfaProperty:name>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("expect %s in %s", fragment, got)
		}
	}

	// Without the corrigendum only three properties are described.
	w = xmp.New()
	schemas = w.ExtensionSchemas()
	schemas.DescribePDFAID(false)
	schemas.Close()
	if got := body(t, w.Finish("")); strings.Contains(got, "corr") {
		t.Errorf("expect no corr property, got %s", got)
	}
}

func TestDescribePDFSchema(t *testing.T) {
	w := xmp.New()

	schemas := w.ExtensionSchemas()
	pdf := schemas.PDF()
	properties := pdf.Properties()
	properties.DescribeProducer().DescribeTrapped()
	properties.Close()
	pdf.Close()
	schemas.Close()

	got := body(t, w.Finish(""))
	for _, fragment := range []string{
		`<pdfaSchema:schema>Adobe PDF schema</pdfaSchema:schema>`,
		`<pdfaSchema:prefix>pdf</pdfaSchema:prefix>`,
		`<pdfaProperty:name>Producer</pdfaProperty:name>`,
		`<pdfaProperty:name>Trapped</pdfaProperty:name>`,
		`<pdfaProperty:category>internal</pdfaProperty:category>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("expect %s in %s", fragment, got)
		}
	}
}

func TestDescribeMediaManagementSchema(t *testing.T) {
	w := xmp.New()

	schemas := w.ExtensionSchemas()
	mm := schemas.MediaManagement()
	properties := mm.Properties()
	properties.DescribeInstanceID().DescribePantry()
	properties.Close()
	mm.Close()
	schemas.Close()

	got := body(t, w.Finish(""))
	for _, fragment := range []string{
		`<pdfaSchema:schema>XMP Media Management schema</pdfaSchema:schema>`,
		`<pdfaSchema:prefix>xmpMM</pdfaSchema:prefix>`,
		`<pdfaProperty:name>InstanceID</pdfaProperty:name>`,
		`<pdfaProperty:name>Pantry</pdfaProperty:name>`,
		`<pdfaProperty:valueType>ResourceRef</pdfaProperty:valueType>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("expect %s in %s", fragment, got)
		}
	}
}
