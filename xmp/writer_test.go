package xmp_test

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typst/xmp-writer/xmp"
)

func TestEmptyPacket(t *testing.T) {
	w := xmp.New()

	expect := `<?xpacket begin="` + "\uFEFF" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>` +
		`<x:xmpmeta xmlns:x="adobe:ns:meta/" x:xmptk="xmp-writer">` +
		`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` +
		`<rdf:Description rdf:about="">` +
		`</rdf:Description></rdf:RDF></x:xmpmeta><?xpacket end="r"?>`

	if diff := cmp.Diff(expect, string(w.Finish(""))); diff != "" {
		t.Errorf("packet mismatch (-expect +actual):\n%s", diff)
	}
}

func TestAboutEscaped(t *testing.T) {
	w := xmp.New()

	packet := string(w.Finish(`uuid:"quoted"`))
	expect := `rdf:about="uuid:&quot;quoted&quot;"`
	if !strings.Contains(packet, expect) {
		t.Errorf("expect packet to contain %s, got %s", expect, packet)
	}
}

func TestCreatorSeq(t *testing.T) {
	w := xmp.New()
	w.Creator("Martin Haug")

	packet := string(w.Finish(""))
	expect := "<dc:creator><rdf:Seq><rdf:li>Martin Haug</rdf:li></rdf:Seq></dc:creator>"
	if e, a := expect, body(t, []byte(packet)); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
	if !strings.Contains(packet, `xmlns:dc="http://purl.org/dc/elements/1.1/"`) {
		t.Errorf("expect dc namespace declaration, got %s", packet)
	}
}

func TestLanguageAlternative(t *testing.T) {
	w := xmp.New()
	w.Title(
		xmp.LangAlt{Text: "Sunrise"},
		xmp.LangAlt{Lang: "de", Text: "Sonnenaufgang"},
	)

	expect := `<dc:title><rdf:Alt>` +
		`<rdf:li xml:lang="x-default">Sunrise</rdf:li>` +
		`<rdf:li xml:lang="de">Sonnenaufgang</rdf:li>` +
		`</rdf:Alt></dc:title>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestScalarArrayConveniences(t *testing.T) {
	cases := map[string]struct {
		write  func(e xmp.Element)
		expect string
	}{
		"ordered": {
			func(e xmp.Element) { e.OrderedArray(xmp.Integer(1), xmp.Integer(2)) },
			"<rdf:Seq><rdf:li>1</rdf:li><rdf:li>2</rdf:li></rdf:Seq>",
		},
		"unordered": {
			func(e xmp.Element) { e.UnorderedArray(xmp.Text("a"), xmp.Text("b")) },
			"<rdf:Bag><rdf:li>a</rdf:li><rdf:li>b</rdf:li></rdf:Bag>",
		},
		"alternative": {
			func(e xmp.Element) { e.AlternativeArray(xmp.Text("x")) },
			"<rdf:Alt><rdf:li>x</rdf:li></rdf:Alt>",
		},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			w := xmp.New()
			tt.write(w.Element("relation", xmp.DublinCore))
			expect := "<dc:relation>" + tt.expect + "</dc:relation>"
			if e, a := expect, body(t, w.Finish("")); e != a {
				t.Errorf("expect %s, got %s", e, a)
			}
		})
	}
}

func TestNamespaceDeclarations(t *testing.T) {
	w := xmp.New()
	w.Creator("Test").
		NumPages(3).
		Marked(true).
		Producer("xmp-writer")

	packet := string(w.Finish(""))
	start := strings.Index(packet, "<rdf:Description")
	open := packet[start : start+strings.IndexByte(packet[start:], '>')]

	// Sorted by prefix, and only the namespaces that were used.
	declared := []string{
		`xmlns:dc="http://purl.org/dc/elements/1.1/"`,
		`xmlns:pdf="http://ns.adobe.com/pdf/1.3/"`,
		`xmlns:xmpRights="http://ns.adobe.com/xap/1.0/rights/"`,
		`xmlns:xmpTPg="http://ns.adobe.com/xap/1.0/t/pg/"`,
	}
	last := -1
	for _, decl := range declared {
		idx := strings.Index(open, decl)
		if idx < 0 {
			t.Fatalf("expect declaration %s in %s", decl, open)
		}
		if idx < last {
			t.Errorf("expect %s after previous declaration in %s", decl, open)
		}
		last = idx
	}

	if strings.Contains(open, "xmlns:xmp=") {
		t.Errorf("expect no declaration for unused namespace, got %s", open)
	}
	if strings.Count(open, "xmlns:rdf=") != 0 {
		t.Errorf("expect rdf declared on rdf:RDF only, got %s", open)
	}
}

func TestRDFDeclaredForContainers(t *testing.T) {
	w := xmp.New()
	w.Language("en")

	// rdf is declared on the rdf:RDF element, never on the description.
	packet := string(w.Finish(""))
	if e, a := 1, strings.Count(packet, "xmlns:rdf="); e != a {
		t.Errorf("expect %d rdf declarations, got %d in %s", e, a, packet)
	}
}

func TestNestedScopesCloseInOrder(t *testing.T) {
	w := xmp.New()

	versions := w.Versions()
	version := versions.AddVersion()
	version.Version("2")
	event := version.Event()
	event.Action(xmp.ActionSaved)
	event.Close()
	version.Close()
	versions.Close()

	expect := `<xmpMM:Versions><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stVer:version>2</stVer:version>` +
		`<stVer:event rdf:parseType="Resource">` +
		`<stEvt:action>saved</stEvt:action>` +
		`</stVer:event>` +
		`</rdf:li>` +
		`</rdf:Seq></xmpMM:Versions>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w := xmp.New()

	array := w.Fonts()
	font := array.AddFont()
	font.FontName("NotoSans-Regular")
	font.Close()
	font.Close()
	array.Close()
	array.Close()

	expect := `<xmpTPg:Fonts><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stFnt:fontName>NotoSans-Regular</stFnt:fontName>` +
		`</rdf:li>` +
		`</rdf:Bag></xmpTPg:Fonts>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestWriterPanicsWhileScopeOpen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expect panic when writing past an open scope")
		}
	}()

	w := xmp.New()
	ingredients := w.Ingredients()
	defer ingredients.Close()
	w.Creator("Test")
}

func TestClosedScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expect panic on use of a closed scope")
		}
	}()

	w := xmp.New()
	size := w.MaxPageSize()
	size.Width(210).Unit(xmp.UnitMM)
	size.Close()
	size.Height(297)
}

func TestFinishPanicsWhileScopeOpen(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expect panic on finish with an open scope")
		}
	}()

	w := xmp.New()
	w.Colorants()
	w.Finish("")
}

func TestUseAfterFinishPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expect panic on use after finish")
		}
	}()

	w := xmp.New()
	w.Finish("")
	w.Creator("Test")
}

func TestPacketIsWellFormed(t *testing.T) {
	w := xmp.New()

	date, err := xmp.NewDateTimeSeconds(2021, 11, 6, 17, 9, 6)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	date = date.UTC()

	w.Creator("Martin Haug", "Laurenz Mädje").
		Title(xmp.LangAlt{Text: "A typesetting system"}).
		CreateDate(date).
		ModifyDate(date).
		Producer("typst").
		PDFAPart(2).
		PDFAConformance("B")

	history := w.History()
	history.AddEvent().
		Action(xmp.ActionCreated).
		InstanceID(xmp.NewID()).
		When(date).
		Close()
	history.Close()

	schemas := w.ExtensionSchemas()
	schemas.DescribePDFAID(false)
	schemas.Close()

	decoder := xml.NewDecoder(bytes.NewReader(w.Finish("")))
	for {
		if _, err := decoder.Token(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("expect well-formed XML, got %v", err)
		}
	}
}
