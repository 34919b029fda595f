package xmp

// A Namespace pairs an XML namespace URI with the short prefix XMP consumers
// expect for it. Namespace values are comparable and may be used as map keys.
type Namespace struct {
	name   string
	prefix string
	uri    string
}

// Well-known XMP namespaces. The prefix/URI pairing of each is a
// compatibility contract: consumers of the output match on these exact
// prefixes.
var (
	RDF                = Namespace{"RDF", "rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"}
	DublinCore         = Namespace{"Dublin Core", "dc", "http://purl.org/dc/elements/1.1/"}
	XMPBasic           = Namespace{"XMP", "xmp", "http://ns.adobe.com/xap/1.0/"}
	XMPRights          = Namespace{"XMP Rights Management", "xmpRights", "http://ns.adobe.com/xap/1.0/rights/"}
	XMPResourceRef     = Namespace{"XMP Resource Reference", "stRef", "http://ns.adobe.com/xap/1.0/sType/ResourceRef#"}
	XMPResourceEvent   = Namespace{"XMP Resource Event", "stEvt", "http://ns.adobe.com/xap/1.0/sType/ResourceEvent#"}
	XMPVersion         = Namespace{"XMP Version", "stVer", "http://ns.adobe.com/xap/1.0/sType/Version#"}
	XMPJob             = Namespace{"XMP Job", "stJob", "http://ns.adobe.com/xap/1.0/sType/Job#"}
	XMPJobManagement   = Namespace{"XMP Job Management", "xmpBJ", "http://ns.adobe.com/xap/1.0/bj/"}
	XMPColorant        = Namespace{"XMP Colorant", "xmpG", "http://ns.adobe.com/xap/1.0/g/"}
	XMPFont            = Namespace{"XMP Font", "stFnt", "http://ns.adobe.com/xap/1.0/sType/Font#"}
	XMPDimensions      = Namespace{"XMP Dimensions", "stDim", "http://ns.adobe.com/xap/1.0/sType/Dimensions#"}
	XMPMedia           = Namespace{"XMP Media Management", "xmpMM", "http://ns.adobe.com/xap/1.0/mm/"}
	XMPPaged           = Namespace{"XMP Paged-Text", "xmpTPg", "http://ns.adobe.com/xap/1.0/t/pg/"}
	XMPDynamicMedia    = Namespace{"XMP Dynamic Media", "xmpDM", "http://ns.adobe.com/xap/1.0/DynamicMedia/"}
	XMPImage           = Namespace{"XMP Image", "xmpGImg", "http://ns.adobe.com/xap/1.0/g/img/"}
	XMPIdq             = Namespace{"XMP Identifier Qualifier", "xmpidq", "http://ns.adobe.com/xmp/Identifier/qual/1.0/"}
	AdobePDF           = Namespace{"Adobe PDF", "pdf", "http://ns.adobe.com/pdf/1.3/"}
	PDFAID             = Namespace{"PDF/A Identification", "pdfaid", "http://www.aiim.org/pdfa/ns/id/"}
	PDFXID             = Namespace{"PDF/X Identification", "pdfxid", "http://www.npes.org/pdfx/ns/id/"}
	PDFAExtension      = Namespace{"PDF/A Extension Schemas", "pdfaExtension", "http://www.aiim.org/pdfa/ns/extension/"}
	PDFASchema         = Namespace{"PDF/A Schema Value Type", "pdfaSchema", "http://www.aiim.org/pdfa/ns/schema#"}
	PDFAProperty       = Namespace{"PDF/A Property Value Type", "pdfaProperty", "http://www.aiim.org/pdfa/ns/property#"}
	PDFAType           = Namespace{"PDF/A ValueType Value Type", "pdfaType", "http://www.aiim.org/pdfa/ns/type#"}
	PDFAField          = Namespace{"PDF/A Field Value Type", "pdfaField", "http://www.aiim.org/pdfa/ns/field#"}
)

// NewNamespace returns a custom namespace. The caller is responsible for
// choosing a prefix that does not collide with any other namespace used in
// the same document.
func NewNamespace(prefix, uri string) Namespace {
	return Namespace{name: prefix, prefix: prefix, uri: uri}
}

// Name returns a human-readable name for the namespace. For custom
// namespaces it is the prefix.
func (n Namespace) Name() string { return n.name }

// Prefix returns the short prefix the namespace is declared under.
func (n Namespace) Prefix() string { return n.prefix }

// URI returns the canonical namespace URI.
func (n Namespace) URI() string { return n.uri }

// less orders namespaces for deterministic declaration of the usage set.
func (n Namespace) less(o Namespace) bool {
	if n.prefix != o.prefix {
		return n.prefix < o.prefix
	}
	return n.uri < o.uri
}
