package xmp

// XMP Basic schema.

// BaseURL writes the xmp:BaseURL property: the base for relative URLs in
// the document.
func (w *Writer) BaseURL(url string) *Writer {
	w.Element("BaseURL", XMPBasic).String(url)
	return w
}

// CreateDate writes the xmp:CreateDate property: when the resource was
// created.
func (w *Writer) CreateDate(date Date) *Writer {
	w.Element("CreateDate", XMPBasic).Date(date)
	return w
}

// CreatorTool writes the xmp:CreatorTool property: the application that
// created the resource.
func (w *Writer) CreatorTool(tool string) *Writer {
	w.Element("CreatorTool", XMPBasic).String(tool)
	return w
}

// XMPIdentifier writes the xmp:Identifier property: an unordered array of
// text strings that identify the resource. The scheme can be declared with
// IDQScheme.
func (w *Writer) XMPIdentifier(ids ...string) *Writer {
	return w.textArray("Identifier", XMPBasic, Bag, ids)
}

// Label writes the xmp:Label property: a user-defined label.
func (w *Writer) Label(label string) *Writer {
	w.Element("Label", XMPBasic).String(label)
	return w
}

// MetadataDate writes the xmp:MetadataDate property: when the metadata was
// last changed.
func (w *Writer) MetadataDate(date Date) *Writer {
	w.Element("MetadataDate", XMPBasic).Date(date)
	return w
}

// ModifyDate writes the xmp:ModifyDate property: when the resource was last
// modified.
func (w *Writer) ModifyDate(date Date) *Writer {
	w.Element("ModifyDate", XMPBasic).Date(date)
	return w
}

// Nickname writes the xmp:Nickname property: a short informal name.
func (w *Writer) Nickname(nickname string) *Writer {
	w.Element("Nickname", XMPBasic).String(nickname)
	return w
}

// Rating writes the xmp:Rating property: a user-assigned rating.
func (w *Writer) Rating(rating Rating) *Writer {
	w.Element("Rating", XMPBasic).Value(rating)
	return w
}

// Thumbnails starts the xmp:Thumbnails property: alternative thumbnail
// images of the resource. The returned writer must be closed.
func (w *Writer) Thumbnails() *ThumbnailsWriter {
	return &ThumbnailsWriter{w.Element("Thumbnails", XMPBasic).Array(Alt)}
}

// ThumbnailsWriter writes a set of thumbnails. Created by
// Writer.Thumbnails.
type ThumbnailsWriter struct {
	*Array
}

// AddThumbnail adds a thumbnail struct to the set.
func (t *ThumbnailsWriter) AddThumbnail() *ThumbnailWriter {
	return &ThumbnailWriter{t.Element().Object()}
}

// ThumbnailWriter writes one self-contained thumbnail image. Created by
// ThumbnailsWriter.AddThumbnail.
type ThumbnailWriter struct {
	*Struct
}

// Format writes the xmpGImg:format property. Must be "JPEG" for now.
func (t *ThumbnailWriter) Format(format string) *ThumbnailWriter {
	t.Element("format", XMPImage).String(format)
	return t
}

// FormatJPEG writes the xmpGImg:format property with the value "JPEG".
func (t *ThumbnailWriter) FormatJPEG() *ThumbnailWriter {
	return t.Format("JPEG")
}

// Width writes the xmpGImg:width property.
func (t *ThumbnailWriter) Width(width int64) *ThumbnailWriter {
	t.Element("width", XMPImage).Long(width)
	return t
}

// Height writes the xmpGImg:height property.
func (t *ThumbnailWriter) Height(height int64) *ThumbnailWriter {
	t.Element("height", XMPImage).Long(height)
	return t
}

// Image writes the xmpGImg:image property: a base64-encoded JPEG.
func (t *ThumbnailWriter) Image(image string) *ThumbnailWriter {
	t.Element("image", XMPImage).String(image)
	return t
}
