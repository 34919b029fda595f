package xmp

// XMP Paged-Text schema.

// Colorants starts the xmpTPg:Colorants property: an ordered array of
// colorants (swatches) used in the document. The returned writer must be
// closed.
func (w *Writer) Colorants() *ColorantsWriter {
	return &ColorantsWriter{w.Element("Colorants", XMPPaged).Array(Seq)}
}

// Fonts starts the xmpTPg:Fonts property: the fonts used in the document.
// The returned writer must be closed.
func (w *Writer) Fonts() *FontsWriter {
	return &FontsWriter{w.Element("Fonts", XMPPaged).Array(Bag)}
}

// MaxPageSize starts the xmpTPg:MaxPageSize property: the size of the
// largest page in the document. The returned writer must be closed.
func (w *Writer) MaxPageSize() *DimensionsWriter {
	return &DimensionsWriter{w.Element("MaxPageSize", XMPPaged).Object()}
}

// NumPages writes the xmpTPg:NPages property: the number of pages in the
// document.
func (w *Writer) NumPages(n int64) *Writer {
	w.Element("NPages", XMPPaged).Long(n)
	return w
}

// PlateNames writes the xmpTPg:PlateNames property: the names of the
// printing plates needed to print the document.
func (w *Writer) PlateNames(names ...string) *Writer {
	return w.textArray("PlateNames", XMPPaged, Seq, names)
}

// ColorantWriter writes a colorant struct. Created by
// ColorantsWriter.AddColorant.
type ColorantWriter struct {
	*Struct
}

// Type writes the xmpG:type property: whether the colorant is a process or
// a spot color.
func (c *ColorantWriter) Type(kind ColorantType) *ColorantWriter {
	c.Element("type", XMPColorant).Value(kind)
	return c
}

// SwatchName writes the xmpG:swatchName property.
func (c *ColorantWriter) SwatchName(name string) *ColorantWriter {
	c.Element("swatchName", XMPColorant).String(name)
	return c
}

// Mode writes the xmpG:colorantMode property: the color space in which the
// colorant is defined.
func (c *ColorantWriter) Mode(mode ColorantMode) *ColorantWriter {
	c.Element("colorantMode", XMPColorant).Value(mode)
	return c
}

// L writes the xmpG:L property: the L value for Lab colorants, in the range
// 0 to 100.
func (c *ColorantWriter) L(value float64) *ColorantWriter {
	c.Element("L", XMPColorant).Double(value)
	return c
}

// A writes the xmpG:A property: the A value for Lab colorants, in the range
// -128 to 127.
func (c *ColorantWriter) A(value int64) *ColorantWriter {
	c.Element("A", XMPColorant).Long(value)
	return c
}

// B writes the xmpG:B property: the B value for Lab colorants, in the range
// -128 to 127.
func (c *ColorantWriter) B(value int64) *ColorantWriter {
	c.Element("B", XMPColorant).Long(value)
	return c
}

// Black writes the xmpG:black property: the black value for CMYK colorants,
// in the range 0 to 100.
func (c *ColorantWriter) Black(value float64) *ColorantWriter {
	c.Element("black", XMPColorant).Double(value)
	return c
}

// Cyan writes the xmpG:cyan property: the cyan value for CMYK colorants, in
// the range 0 to 100.
func (c *ColorantWriter) Cyan(value float64) *ColorantWriter {
	c.Element("cyan", XMPColorant).Double(value)
	return c
}

// Magenta writes the xmpG:magenta property: the magenta value for CMYK
// colorants, in the range 0 to 100.
func (c *ColorantWriter) Magenta(value float64) *ColorantWriter {
	c.Element("magenta", XMPColorant).Double(value)
	return c
}

// Yellow writes the xmpG:yellow property: the yellow value for CMYK
// colorants, in the range 0 to 100.
func (c *ColorantWriter) Yellow(value float64) *ColorantWriter {
	c.Element("yellow", XMPColorant).Double(value)
	return c
}

// Red writes the xmpG:red property: the red value for RGB colorants, in the
// range 0 to 255.
func (c *ColorantWriter) Red(value int64) *ColorantWriter {
	c.Element("red", XMPColorant).Long(value)
	return c
}

// Green writes the xmpG:green property: the green value for RGB colorants,
// in the range 0 to 255.
func (c *ColorantWriter) Green(value int64) *ColorantWriter {
	c.Element("green", XMPColorant).Long(value)
	return c
}

// Blue writes the xmpG:blue property: the blue value for RGB colorants, in
// the range 0 to 255.
func (c *ColorantWriter) Blue(value int64) *ColorantWriter {
	c.Element("blue", XMPColorant).Long(value)
	return c
}

// ColorantsWriter writes a colorant array. Created by Writer.Colorants.
type ColorantsWriter struct {
	*Array
}

// AddColorant adds a colorant to the array.
func (c *ColorantsWriter) AddColorant() *ColorantWriter {
	return &ColorantWriter{c.Element().Object()}
}

// FontWriter writes a font struct. Created by FontsWriter.AddFont.
type FontWriter struct {
	*Struct
}

// ChildFontFiles writes the stFnt:childFontFiles property: the font files
// that make up a composite font.
func (f *FontWriter) ChildFontFiles(files ...string) *FontWriter {
	array := f.Element("childFontFiles", XMPFont).Array(Seq)
	defer array.Close()
	for _, file := range files {
		array.Element().String(file)
	}
	return f
}

// Composite writes the stFnt:composite property: whether the font is a
// composite font.
func (f *FontWriter) Composite(composite bool) *FontWriter {
	f.Element("composite", XMPFont).Boolean(composite)
	return f
}

// FontFace writes the stFnt:fontFace property.
func (f *FontWriter) FontFace(face string) *FontWriter {
	f.Element("fontFace", XMPFont).String(face)
	return f
}

// FontFamily writes the stFnt:fontFamily property.
func (f *FontWriter) FontFamily(family string) *FontWriter {
	f.Element("fontFamily", XMPFont).String(family)
	return f
}

// FontFile writes the stFnt:fontFileName property: the name of the font
// file, without a path.
func (f *FontWriter) FontFile(file string) *FontWriter {
	f.Element("fontFileName", XMPFont).String(file)
	return f
}

// FontName writes the stFnt:fontName property: the PostScript name of the
// font.
func (f *FontWriter) FontName(name string) *FontWriter {
	f.Element("fontName", XMPFont).String(name)
	return f
}

// FontType writes the stFnt:fontType property.
func (f *FontWriter) FontType(kind FontType) *FontWriter {
	f.Element("fontType", XMPFont).Value(kind)
	return f
}

// VersionString writes the stFnt:versionString property.
func (f *FontWriter) VersionString(version string) *FontWriter {
	f.Element("versionString", XMPFont).String(version)
	return f
}

// FontsWriter writes a font array. Created by Writer.Fonts.
type FontsWriter struct {
	*Array
}

// AddFont adds a font to the array.
func (f *FontsWriter) AddFont() *FontWriter {
	return &FontWriter{f.Element().Object()}
}

// DimensionsWriter writes a physical dimensions struct. Created by
// Writer.MaxPageSize.
type DimensionsWriter struct {
	*Struct
}

// Width writes the stDim:w property.
func (d *DimensionsWriter) Width(width float64) *DimensionsWriter {
	d.Element("w", XMPDimensions).Double(width)
	return d
}

// Height writes the stDim:h property.
func (d *DimensionsWriter) Height(height float64) *DimensionsWriter {
	d.Element("h", XMPDimensions).Double(height)
	return d
}

// Unit writes the stDim:unit property: the unit the dimensions are
// measured in.
func (d *DimensionsWriter) Unit(unit DimensionUnit) *DimensionsWriter {
	d.Element("unit", XMPDimensions).Value(unit)
	return d
}
