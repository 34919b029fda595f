package xmp

import (
	"fmt"
	"strconv"
	"time"
)

// datePrecision records how many trailing fields of a Date are present.
// Fields always form a prefix: a Date cannot carry a second without an hour
// and a minute, because no constructor can build one.
type datePrecision int

const (
	precYear datePrecision = iota
	precMonth
	precDay
	precMinute
	precSecond
)

type tzKind int

const (
	tzNone tzKind = iota
	tzUTC
	tzOffset
)

// A Date is an XMP date value with partial precision: anything from a bare
// year down to a full timestamp with timezone. Build one with the
// constructors in this package or convert a time.Time with DateFromTime.
type Date struct {
	year, month, day     int
	hour, minute, second int
	prec                 datePrecision
	tz                   tzKind
	tzOffsetMinutes      int
}

// DateYear returns a year-precision date.
func DateYear(year int) (Date, error) {
	if err := checkDateField("year", year, 0, 9999); err != nil {
		return Date{}, err
	}
	return Date{year: year, prec: precYear}, nil
}

// DateYearMonth returns a month-precision date.
func DateYearMonth(year, month int) (Date, error) {
	d, err := DateYear(year)
	if err != nil {
		return Date{}, err
	}
	if err := checkDateField("month", month, 1, 12); err != nil {
		return Date{}, err
	}
	d.month, d.prec = month, precMonth
	return d, nil
}

// NewDate returns a day-precision date.
func NewDate(year, month, day int) (Date, error) {
	d, err := DateYearMonth(year, month)
	if err != nil {
		return Date{}, err
	}
	if err := checkDateField("day", day, 1, 31); err != nil {
		return Date{}, err
	}
	d.day, d.prec = day, precDay
	return d, nil
}

// NewDateTime returns a minute-precision local time.
func NewDateTime(year, month, day, hour, minute int) (Date, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, err
	}
	if err := checkDateField("hour", hour, 0, 23); err != nil {
		return Date{}, err
	}
	if err := checkDateField("minute", minute, 0, 59); err != nil {
		return Date{}, err
	}
	d.hour, d.minute, d.prec = hour, minute, precMinute
	return d, nil
}

// NewDateTimeSeconds returns a second-precision local time.
func NewDateTimeSeconds(year, month, day, hour, minute, second int) (Date, error) {
	d, err := NewDateTime(year, month, day, hour, minute)
	if err != nil {
		return Date{}, err
	}
	if err := checkDateField("second", second, 0, 59); err != nil {
		return Date{}, err
	}
	d.second, d.prec = second, precSecond
	return d, nil
}

// UTC marks the date as UTC, rendered with the Z suffix. The timezone is
// only emitted for dates with at least minute precision.
func (d Date) UTC() Date {
	d.tz = tzUTC
	d.tzOffsetMinutes = 0
	return d
}

// Zone sets a signed hour:minute offset from UTC. West-of-UTC offsets are
// given with negative hours; minutes may only be negative when hours is
// zero.
func (d Date) Zone(hours, minutes int) (Date, error) {
	if err := checkDateField("timezone hours", hours, -14, 14); err != nil {
		return Date{}, err
	}
	lo := 0
	if hours == 0 {
		lo = -59
	}
	if err := checkDateField("timezone minutes", minutes, lo, 59); err != nil {
		return Date{}, err
	}
	offset := hours*60 + minutes
	if hours < 0 {
		offset = hours*60 - minutes
	}
	d.tz = tzOffset
	d.tzOffsetMinutes = offset
	return d, nil
}

// DateFromTime converts t to a full-precision Date, carrying t's zone
// offset (or the Z marker when t is in UTC).
func DateFromTime(t time.Time) Date {
	d := Date{
		year:   t.Year(),
		month:  int(t.Month()),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		prec:   precSecond,
	}
	if t.Location() == time.UTC {
		d.tz = tzUTC
		return d
	}
	_, seconds := t.Zone()
	d.tz = tzOffset
	d.tzOffsetMinutes = seconds / 60
	return d
}

func checkDateField(name string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrInvalidDateTime, name, v, min, max)
	}
	return nil
}

func (d Date) appendValue(w *Writer) {
	w.scratch = d.appendTo(w.scratch[:0])
	w.buf.Write(w.scratch)
}

// String renders the date in its XMP form.
func (d Date) String() string {
	return string(d.appendTo(nil))
}

func (d Date) appendTo(dst []byte) []byte {
	dst = appendPadded(dst, d.year, 4)
	if d.prec >= precMonth {
		dst = append(dst, '-')
		dst = appendPadded(dst, d.month, 2)
	}
	if d.prec >= precDay {
		dst = append(dst, '-')
		dst = appendPadded(dst, d.day, 2)
	}
	if d.prec >= precMinute {
		dst = append(dst, 'T')
		dst = appendPadded(dst, d.hour, 2)
		dst = append(dst, ':')
		dst = appendPadded(dst, d.minute, 2)
	}
	if d.prec >= precSecond {
		dst = append(dst, ':')
		dst = appendPadded(dst, d.second, 2)
	}
	if d.prec >= precMinute {
		switch d.tz {
		case tzUTC:
			dst = append(dst, 'Z')
		case tzOffset:
			offset := d.tzOffsetMinutes
			sign := byte('+')
			if offset < 0 {
				sign = '-'
				offset = -offset
			}
			dst = append(dst, sign)
			dst = appendPadded(dst, offset/60, 2)
			dst = append(dst, ':')
			dst = appendPadded(dst, offset%60, 2)
		}
	}
	return dst
}

// appendPadded appends v zero-padded to the given width.
func appendPadded(dst []byte, v, width int) []byte {
	for limit := 10; width > 1; width, limit = width-1, limit*10 {
		if v < limit {
			dst = append(dst, '0')
		}
	}
	return strconv.AppendInt(dst, int64(v), 10)
}
