package xmp

import (
	"fmt"
	"strconv"
)

// CollectionType selects the RDF array shape of a property.
type CollectionType string

// The three RDF collection kinds.
const (
	Seq CollectionType = "Seq"
	Bag CollectionType = "Bag"
	Alt CollectionType = "Alt"
)

// LangAlt is one entry of a language-alternative array. A zero Lang stands
// for "no specific language" and is emitted as x-default.
type LangAlt struct {
	Lang LangID
	Text string
}

// ResourceEventAction names the action of a resource event. Values outside
// the listed constants are written as entered.
type ResourceEventAction string

// Actions defined by the XMP Media Management schema.
const (
	ActionConverted      ResourceEventAction = "converted"
	ActionCopied         ResourceEventAction = "copied"
	ActionCreated        ResourceEventAction = "created"
	ActionCropped        ResourceEventAction = "cropped"
	ActionEdited         ResourceEventAction = "edited"
	ActionFiltered       ResourceEventAction = "filtered"
	ActionFormatted      ResourceEventAction = "formatted"
	ActionVersionUpdated ResourceEventAction = "version_updated"
	ActionPrinted        ResourceEventAction = "printed"
	ActionPublished      ResourceEventAction = "published"
	ActionManaged        ResourceEventAction = "managed"
	ActionProduced       ResourceEventAction = "produced"
	ActionResized        ResourceEventAction = "resized"
	ActionSaved          ResourceEventAction = "saved"
)

func (v ResourceEventAction) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// MaskMarkers controls marker processing for ingredient resources.
type MaskMarkers string

const (
	MarkersAll  MaskMarkers = "All"
	MarkersNone MaskMarkers = "None"
)

func (v MaskMarkers) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// ColorantMode is the color space a colorant is defined in.
type ColorantMode string

const (
	ModeCMYK ColorantMode = "CMYK"
	ModeRGB  ColorantMode = "RGB"
	ModeLab  ColorantMode = "Lab"
)

func (v ColorantMode) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// ColorantType distinguishes process colors from spot colors.
type ColorantType string

const (
	ColorantProcess ColorantType = "PROCESS"
	ColorantSpot    ColorantType = "SPOT"
)

func (v ColorantType) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// DimensionUnit is the measurement unit of a dimensions struct. Values
// outside the listed constants are written as entered.
type DimensionUnit string

const (
	UnitInch  DimensionUnit = "inch"
	UnitMM    DimensionUnit = "mm"
	UnitPixel DimensionUnit = "pixel"
	UnitPica  DimensionUnit = "pica"
	UnitPoint DimensionUnit = "point"
)

func (v DimensionUnit) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// FontType is the technology of a font. Values outside the listed constants
// are written as entered.
type FontType string

const (
	FontTrueType FontType = "TrueType"
	FontOpenType FontType = "OpenType"
	FontType1    FontType = "Type1"
	FontBitmap   FontType = "Bitmap"
)

func (v FontType) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// RenditionClass describes the kind of rendition a document is.
type RenditionClass struct {
	keyword    string
	format     string
	width      int
	height     int
	colorSpace string
}

// The rendition classes defined by the XMP Media Management schema.
var (
	RenditionDefault       = RenditionClass{keyword: "default"}
	RenditionDraft         = RenditionClass{keyword: "draft"}
	RenditionLowResolution = RenditionClass{keyword: "low-res"}
	RenditionProof         = RenditionClass{keyword: "proof"}
	RenditionScreen        = RenditionClass{keyword: "screen"}
)

// CustomRendition returns a rendition class with a caller-defined keyword.
func CustomRendition(keyword string) RenditionClass {
	return RenditionClass{keyword: keyword}
}

// ThumbnailRendition returns a thumbnail rendition class. Format, size and
// color space are optional; pass "" or zero to omit them.
func ThumbnailRendition(format string, width, height int, colorSpace string) RenditionClass {
	return RenditionClass{
		keyword:    "thumbnail",
		format:     format,
		width:      width,
		height:     height,
		colorSpace: colorSpace,
	}
}

func (v RenditionClass) appendValue(w *Writer) {
	escapeString(&w.buf, v.keyword)
	if v.format != "" {
		w.buf.WriteByte(':')
		escapeString(&w.buf, v.format)
	}
	if v.width != 0 || v.height != 0 {
		w.buf.WriteByte(':')
		w.scratch = strconv.AppendInt(w.scratch[:0], int64(v.width), 10)
		w.scratch = append(w.scratch, 'x')
		w.scratch = strconv.AppendInt(w.scratch, int64(v.height), 10)
		w.buf.Write(w.scratch)
	}
	if v.colorSpace != "" {
		w.buf.WriteByte(':')
		escapeString(&w.buf, v.colorSpace)
	}
}

// Rating is the xmp:Rating value domain: -1 for rejected, 0 for unrated,
// 1 through 5 for star ratings.
type Rating float64

const (
	RatingRejected   Rating = -1
	RatingUnknown    Rating = 0
	RatingOneStar    Rating = 1
	RatingTwoStars   Rating = 2
	RatingThreeStars Rating = 3
	RatingFourStars  Rating = 4
	RatingFiveStars  Rating = 5
)

// RatingFromStars converts a star count to a Rating. Star counts must be
// between 0 and 5.
func RatingFromStars(stars int) (Rating, error) {
	if stars < 0 || stars > 5 {
		return 0, fmt.Errorf("%w: %d stars not in [0, 5]", ErrInvalidRating, stars)
	}
	return Rating(stars), nil
}

func (v Rating) appendValue(w *Writer) {
	Real(v).appendValue(w)
}
