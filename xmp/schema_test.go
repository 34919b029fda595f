package xmp_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/typst/xmp-writer/xmp"
)

func TestNewID(t *testing.T) {
	id := xmp.NewID()
	if !strings.HasPrefix(id, "uuid:") {
		t.Fatalf("expect uuid: prefix, got %s", id)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(id, "uuid:")); err != nil {
		t.Errorf("expect valid uuid, got %v", err)
	}
	if id == xmp.NewID() {
		t.Errorf("expect distinct ids")
	}
}

func TestSpotColorant(t *testing.T) {
	w := xmp.New()

	colorants := w.Colorants()
	colorants.AddColorant().
		SwatchName("PANTONE 286 C").
		Type(xmp.ColorantSpot).
		Mode(xmp.ModeCMYK).
		Cyan(100).
		Magenta(72).
		Yellow(0).
		Black(6).
		Close()
	colorants.Close()

	expect := `<xmpTPg:Colorants><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<xmpG:swatchName>PANTONE 286 C</xmpG:swatchName>` +
		`<xmpG:type>SPOT</xmpG:type>` +
		`<xmpG:colorantMode>CMYK</xmpG:colorantMode>` +
		`<xmpG:cyan>100</xmpG:cyan>` +
		`<xmpG:magenta>72</xmpG:magenta>` +
		`<xmpG:yellow>0</xmpG:yellow>` +
		`<xmpG:black>6</xmpG:black>` +
		`</rdf:li>` +
		`</rdf:Seq></xmpTPg:Colorants>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestColorantStructsInArray(t *testing.T) {
	w := xmp.New()

	colorants := w.Colorants()
	colorants.AddColorant().SwatchName("Red").Close()
	colorants.AddColorant().SwatchName("Green").Close()
	colorants.Close()

	expect := `<xmpTPg:Colorants><rdf:Seq>` +
		`<rdf:li rdf:parseType="Resource"><xmpG:swatchName>Red</xmpG:swatchName></rdf:li>` +
		`<rdf:li rdf:parseType="Resource"><xmpG:swatchName>Green</xmpG:swatchName></rdf:li>` +
		`</rdf:Seq></xmpTPg:Colorants>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestLabColorant(t *testing.T) {
	w := xmp.New()

	colorants := w.Colorants()
	colorants.AddColorant().
		Mode(xmp.ModeLab).
		L(48.5).
		A(-12).
		B(60).
		Close()
	colorants.Close()

	expect := `<xmpG:colorantMode>Lab</xmpG:colorantMode>` +
		`<xmpG:L>48.5</xmpG:L>` +
		`<xmpG:A>-12</xmpG:A>` +
		`<xmpG:B>60</xmpG:B>`
	if a := body(t, w.Finish("")); !strings.Contains(a, expect) {
		t.Errorf("expect %s in %s", expect, a)
	}
}

func TestMaxPageSize(t *testing.T) {
	w := xmp.New()

	size := w.MaxPageSize()
	size.Width(210).Height(297).Unit(xmp.UnitMM)
	size.Close()

	expect := `<xmpTPg:MaxPageSize rdf:parseType="Resource">` +
		`<stDim:w>210</stDim:w>` +
		`<stDim:h>297</stDim:h>` +
		`<stDim:unit>mm</stDim:unit>` +
		`</xmpTPg:MaxPageSize>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestDerivedFrom(t *testing.T) {
	w := xmp.New()

	ref := w.DerivedFrom()
	ref.InstanceID("uuid:original").
		RenditionClass(xmp.RenditionDefault).
		AlternatePaths("a/b.pdf", "c/d.pdf")
	ref.Close()

	expect := `<xmpMM:DerivedFrom rdf:parseType="Resource">` +
		`<stRef:instanceID>uuid:original</stRef:instanceID>` +
		`<stRef:renditionClass>default</stRef:renditionClass>` +
		`<stRef:alternatePaths><rdf:Seq>` +
		`<rdf:li>a/b.pdf</rdf:li>` +
		`<rdf:li>c/d.pdf</rdf:li>` +
		`</rdf:Seq></stRef:alternatePaths>` +
		`</xmpMM:DerivedFrom>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestJobs(t *testing.T) {
	w := xmp.New()

	jobs := w.Jobs()
	jobs.AddJob().
		ID("42").
		Name("proofing").
		URL("https://jobs.example.com/42").
		Close()
	jobs.Close()

	expect := `<xmpBJ:JobRef><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<stJob:id>42</stJob:id>` +
		`<stJob:name>proofing</stJob:name>` +
		`<stJob:url>https://jobs.example.com/42</stJob:url>` +
		`</rdf:li>` +
		`</rdf:Bag></xmpBJ:JobRef>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestPantryItemCustomProperties(t *testing.T) {
	w := xmp.New()

	pantry := w.Pantry()
	item := pantry.AddItem()
	item.InstanceID("uuid:item")
	item.Element("proof", xmp.NewNamespace("print", "https://print.example.com/ns/")).String("screen")
	item.Close()
	pantry.Close()

	packet := string(w.Finish(""))
	expect := `<xmpMM:Pantry><rdf:Bag>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<xmpMM:InstanceID>uuid:item</xmpMM:InstanceID>` +
		`<print:proof>screen</print:proof>` +
		`</rdf:li>` +
		`</rdf:Bag></xmpMM:Pantry>`
	if e, a := expect, body(t, []byte(packet)); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
	if !strings.Contains(packet, `xmlns:print="https://print.example.com/ns/"`) {
		t.Errorf("expect custom namespace declaration, got %s", packet)
	}
}

func TestThumbnails(t *testing.T) {
	w := xmp.New()

	thumbnails := w.Thumbnails()
	thumbnails.AddThumbnail().
		FormatJPEG().
		Width(128).
		Height(96).
		Image("aGVsbG8=").
		Close()
	thumbnails.Close()

	expect := `<xmp:Thumbnails><rdf:Alt>` +
		`<rdf:li rdf:parseType="Resource">` +
		`<xmpGImg:format>JPEG</xmpGImg:format>` +
		`<xmpGImg:width>128</xmpGImg:width>` +
		`<xmpGImg:height>96</xmpGImg:height>` +
		`<xmpGImg:image>aGVsbG8=</xmpGImg:image>` +
		`</rdf:li>` +
		`</rdf:Alt></xmp:Thumbnails>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}

func TestIdentificationProperties(t *testing.T) {
	w := xmp.New()
	w.PDFAPart(3).
		PDFAConformance("U").
		PDFXVersion("PDF/X-4").
		IDQScheme("uuid")

	expect := `<pdfaid:part>3</pdfaid:part>` +
		`<pdfaid:conformance>U</pdfaid:conformance>` +
		`<pdfxid:GTS_PDFXVersion>PDF/X-4</pdfxid:GTS_PDFXVersion>` +
		`<xmpidq:Scheme>uuid</xmpidq:Scheme>`
	if e, a := expect, body(t, w.Finish("")); e != a {
		t.Errorf("expect %s, got %s", e, a)
	}
}
