package xmp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Value is a scalar that can stand as the content of an XMP property. The
// set of implementations is closed: Boolean, Integer, Real, Text, LangID,
// Date, Rating and the enumerated domain types in this package.
type Value interface {
	appendValue(w *Writer)
}

// Text is an XML-escaped string value. The characters < > & ' " are replaced
// with their named entities; everything else, including non-ASCII text,
// passes through unchanged.
type Text string

func (v Text) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// Boolean renders as the XMP literals "True" and "False".
type Boolean bool

func (v Boolean) appendValue(w *Writer) {
	if v {
		w.buf.WriteString("True")
	} else {
		w.buf.WriteString("False")
	}
}

// Integer is a whole-number value.
type Integer int64

func (v Integer) appendValue(w *Writer) {
	w.scratch = strconv.AppendInt(w.scratch[:0], int64(v), 10)
	w.buf.Write(w.scratch)
}

// Real is a floating-point value.
type Real float64

func (v Real) appendValue(w *Writer) {
	w.scratch = appendFloat(w.scratch[:0], float64(v), 64)
	w.buf.Write(w.scratch)
}

// LangID is an RFC 3066 language code.
type LangID string

// DefaultLang is the reserved language tag meaning "no specific language".
const DefaultLang LangID = "x-default"

func (v LangID) appendValue(w *Writer) {
	escapeString(&w.buf, string(v))
}

// escapeString writes s to buf with the five XML special characters replaced
// by their named entities.
func escapeString(buf *bytes.Buffer, s string) {
	var start int
	for i := 0; i < len(s); i++ {
		var ent string
		switch s[i] {
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '&':
			ent = "&amp;"
		case '\'':
			ent = "&apos;"
		case '"':
			ent = "&quot;"
		default:
			continue
		}
		buf.WriteString(s[start:i])
		buf.WriteString(ent)
		start = i + 1
	}
	buf.WriteString(s[start:])
}

// appendFloat encodes v the way the encoding/xml stdlib encoder does:
// fixed notation for ordinary magnitudes, exponent notation for extremes.
func appendFloat(dst []byte, v float64, bits int) []byte {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic(fmt.Sprintf("xmp: invalid float value: %s", strconv.FormatFloat(v, 'g', -1, bits)))
	}

	abs := math.Abs(v)
	format := byte('f')

	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	dst = strconv.AppendFloat(dst, v, format, -1, bits)

	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}
