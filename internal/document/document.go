// Package document maps a YAML metadata description to an XMP packet.
package document

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/typst/xmp-writer/logging"
	"github.com/typst/xmp-writer/xmp"
)

// Document is the YAML description of one metadata packet.
type Document struct {
	About        string     `yaml:"about"`
	Title        []LangText `yaml:"title"`
	Description  []LangText `yaml:"description"`
	Rights       []LangText `yaml:"rights"`
	Creators     []string   `yaml:"creators"`
	Contributors []string   `yaml:"contributors"`
	Publishers   []string   `yaml:"publishers"`
	Subjects     []string   `yaml:"subjects"`
	Languages    []string   `yaml:"languages"`
	Format       string     `yaml:"format"`
	Identifier   string     `yaml:"identifier"`
	Keywords     string     `yaml:"keywords"`
	CreatorTool  string     `yaml:"creator-tool"`
	Producer     string     `yaml:"producer"`
	CreateDate   string     `yaml:"create-date"`
	ModifyDate   string     `yaml:"modify-date"`
	MetadataDate string     `yaml:"metadata-date"`
	Rating       *int       `yaml:"rating"`
	NumPages     *int64     `yaml:"num-pages"`
	DocumentID   string     `yaml:"document-id"`
	InstanceID   string     `yaml:"instance-id"`
	PDF          *PDFInfo   `yaml:"pdf"`
	PDFA         *PDFAInfo  `yaml:"pdfa"`
}

// LangText is a text entry with an optional language tag. In YAML it may be
// given as a plain scalar, which stands for the default language.
type LangText struct {
	Lang string `yaml:"lang"`
	Text string `yaml:"text"`
}

// UnmarshalYAML accepts either a scalar string or a {lang, text} mapping.
func (l *LangText) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		l.Lang = ""
		return value.Decode(&l.Text)
	}
	type raw LangText
	return value.Decode((*raw)(l))
}

// PDFInfo carries the Adobe PDF schema properties.
type PDFInfo struct {
	Version string `yaml:"version"`
	Trapped *bool  `yaml:"trapped"`
}

// PDFAInfo carries the PDF/A identification properties.
type PDFAInfo struct {
	Part           int64  `yaml:"part"`
	Conformance    string `yaml:"conformance"`
	DescribeSchema bool   `yaml:"describe-schema"`
}

// Decode reads a YAML document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// Options control how a document is rendered.
type Options struct {
	// GenerateIDs fills in xmpMM:DocumentID and xmpMM:InstanceID with fresh
	// GUIDs when the document does not set them.
	GenerateIDs bool

	Logger logging.Logger
}

// Render converts the document into a finished XMP packet.
func (d *Document) Render(opts Options) ([]byte, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Noop{}
	}

	w := xmp.New()

	if len(d.Title) > 0 {
		w.Title(langAlts(d.Title)...)
	}
	if len(d.Description) > 0 {
		w.Description(langAlts(d.Description)...)
	}
	if len(d.Rights) > 0 {
		w.Rights(langAlts(d.Rights)...)
	}
	if len(d.Creators) > 0 {
		w.Creator(d.Creators...)
	}
	if len(d.Contributors) > 0 {
		w.Contributor(d.Contributors...)
	}
	if len(d.Publishers) > 0 {
		w.Publisher(d.Publishers...)
	}
	if len(d.Subjects) > 0 {
		w.Subject(d.Subjects...)
	}
	if len(d.Languages) > 0 {
		langs := make([]xmp.LangID, len(d.Languages))
		for i, lang := range d.Languages {
			langs[i] = xmp.LangID(lang)
		}
		w.Language(langs...)
	}
	if d.Format != "" {
		w.Format(d.Format)
	}
	if d.Identifier != "" {
		w.Identifier(d.Identifier)
	}
	if d.Keywords != "" {
		w.PDFKeywords(d.Keywords)
	}
	if d.CreatorTool != "" {
		w.CreatorTool(d.CreatorTool)
	}
	if d.Producer != "" {
		w.Producer(d.Producer)
	}

	if err := setDate(d.CreateDate, "create-date", w.CreateDate); err != nil {
		return nil, err
	}
	if err := setDate(d.ModifyDate, "modify-date", w.ModifyDate); err != nil {
		return nil, err
	}
	if err := setDate(d.MetadataDate, "metadata-date", w.MetadataDate); err != nil {
		return nil, err
	}

	if d.Rating != nil {
		rating, err := xmp.RatingFromStars(*d.Rating)
		if err != nil {
			return nil, fmt.Errorf("rating: %w", err)
		}
		w.Rating(rating)
	}
	if d.NumPages != nil {
		w.NumPages(*d.NumPages)
	}

	documentID, instanceID := d.DocumentID, d.InstanceID
	if opts.GenerateIDs {
		if documentID == "" {
			documentID = xmp.NewID()
			logger.Logf(logging.Debug, "generated document id %s", documentID)
		}
		if instanceID == "" {
			instanceID = xmp.NewID()
			logger.Logf(logging.Debug, "generated instance id %s", instanceID)
		}
	}
	if documentID != "" {
		w.DocumentID(documentID)
	}
	if instanceID != "" {
		w.InstanceID(instanceID)
	}

	if d.PDF != nil {
		if d.PDF.Version != "" {
			w.PDFVersion(d.PDF.Version)
		}
		if d.PDF.Trapped != nil {
			w.Trapped(*d.PDF.Trapped)
		}
	}

	if d.PDFA != nil {
		w.PDFAPart(d.PDFA.Part)
		if d.PDFA.Conformance != "" {
			w.PDFAConformance(d.PDFA.Conformance)
		}
		if d.PDFA.DescribeSchema {
			schemas := w.ExtensionSchemas()
			schemas.DescribePDFAID(false)
			schemas.Close()
		}
	}

	return w.Finish(d.About), nil
}

func langAlts(items []LangText) []xmp.LangAlt {
	alts := make([]xmp.LangAlt, len(items))
	for i, item := range items {
		alts[i] = xmp.LangAlt{Lang: xmp.LangID(item.Lang), Text: item.Text}
	}
	return alts
}

func setDate(value, field string, set func(xmp.Date) *xmp.Writer) error {
	if value == "" {
		return nil
	}
	date, err := ParseDate(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	set(date)
	return nil
}

// dateLayouts pairs the accepted input layouts with the precision each one
// carries, most specific first.
var dateLayouts = []struct {
	layout string
	build  func(t time.Time) (xmp.Date, error)
}{
	{time.RFC3339, func(t time.Time) (xmp.Date, error) {
		return xmp.DateFromTime(t), nil
	}},
	{"2006-01-02T15:04Z07:00", func(t time.Time) (xmp.Date, error) {
		d, err := xmp.NewDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
		if err != nil {
			return xmp.Date{}, err
		}
		return applyZone(d, t)
	}},
	{"2006-01-02T15:04:05", func(t time.Time) (xmp.Date, error) {
		return xmp.NewDateTimeSeconds(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	}},
	{"2006-01-02T15:04", func(t time.Time) (xmp.Date, error) {
		return xmp.NewDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
	}},
	{"2006-01-02", func(t time.Time) (xmp.Date, error) {
		return xmp.NewDate(t.Year(), int(t.Month()), t.Day())
	}},
	{"2006-01", func(t time.Time) (xmp.Date, error) {
		return xmp.DateYearMonth(t.Year(), int(t.Month()))
	}},
	{"2006", func(t time.Time) (xmp.Date, error) {
		return xmp.DateYear(t.Year())
	}},
}

// applyZone carries t's zone over to d: the Z marker for UTC, a signed
// hour:minute offset otherwise.
func applyZone(d xmp.Date, t time.Time) (xmp.Date, error) {
	if t.Location() == time.UTC {
		return d.UTC(), nil
	}
	_, seconds := t.Zone()
	hours := seconds / 3600
	minutes := (seconds / 60) % 60
	if hours != 0 && minutes < 0 {
		minutes = -minutes
	}
	return d.Zone(hours, minutes)
}

// ParseDate parses a date string at any of the precisions a packet can
// carry, from a bare year down to a zoned timestamp. Fractional seconds
// cannot be represented and are rejected.
func ParseDate(value string) (xmp.Date, error) {
	for _, candidate := range dateLayouts {
		t, err := time.Parse(candidate.layout, value)
		if err != nil {
			continue
		}
		if t.Nanosecond() != 0 {
			return xmp.Date{}, fmt.Errorf("fractional seconds in date %q are not supported", value)
		}
		return candidate.build(t)
	}
	return xmp.Date{}, fmt.Errorf("unrecognized date %q", value)
}
