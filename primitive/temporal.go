package primitive

import (
	"regexp"
	"strconv"
	"time"
)

// Precision is the granularity a date, dateTime or time was written with.
type Precision string

const (
	PrecisionYear     Precision = "year"
	PrecisionMonth    Precision = "month"
	PrecisionDay      Precision = "day"
	PrecisionSecond   Precision = "second"
	PrecisionFraction Precision = "fraction"
)

// Date is a FHIR date: a year, a year and month, or a full date, without time zone.
type Date struct {
	Text      string
	Value     time.Time
	Precision Precision
}

func (d Date) Type() string   { return TypeDate }
func (d Date) String() string { return d.Text }

func (d Date) AppendJSON(dst []byte) []byte {
	return AppendQuoted(dst, d.Text)
}

// DateTime is a FHIR dateTime. A time of day, if written, includes seconds.
type DateTime struct {
	Text      string
	Value     time.Time
	Precision Precision
	// HasZone reports whether the text carries a time zone offset.
	HasZone bool
}

func (d DateTime) Type() string   { return TypeDateTime }
func (d DateTime) String() string { return d.Text }

func (d DateTime) AppendJSON(dst []byte) []byte {
	return AppendQuoted(dst, d.Text)
}

// Instant is a FHIR instant: a dateTime with at least seconds and a mandatory zone.
type Instant struct {
	Text  string
	Value time.Time
}

func (i Instant) Type() string   { return TypeInstant }
func (i Instant) String() string { return i.Text }

func (i Instant) AppendJSON(dst []byte) []byte {
	return AppendQuoted(dst, i.Text)
}

// Time is a FHIR time of day. The date part of Value is 0000-01-01 UTC.
type Time struct {
	Text      string
	Value     time.Time
	Precision Precision
}

func (t Time) Type() string   { return TypeTime }
func (t Time) String() string { return t.Text }

func (t Time) AppendJSON(dst []byte) []byte {
	return AppendQuoted(dst, t.Text)
}

var (
	dateRegex     = regexp.MustCompile(`^([0-9]{4})(?:-([0-9]{2})(?:-([0-9]{2}))?)?$`)
	dateTimeRegex = regexp.MustCompile(`^([0-9]{4})(?:-([0-9]{2})(?:-([0-9]{2})(?:T([0-9]{2}):([0-9]{2}):([0-9]{2})(?:\.([0-9]{1,9}))?(Z|[+-][0-9]{2}:[0-9]{2})?)?)?)?$`)
	timeRegex     = regexp.MustCompile(`^([0-9]{2}):([0-9]{2}):([0-9]{2})(?:\.([0-9]{1,9}))?$`)
)

// ParseDate parses a FHIR date.
func ParseDate(s string) (Date, error) {
	m := dateRegex.FindStringSubmatch(s)
	if m == nil {
		return Date{}, syntaxError(TypeDate, s, "expected YYYY, YYYY-MM or YYYY-MM-DD")
	}
	p, err := parseParts(TypeDate, s, m[1], m[2], m[3], "", "", "", "", "")
	if err != nil {
		return Date{}, err
	}
	return Date{Text: s, Value: p.value, Precision: p.precision}, nil
}

// ParseDateTime parses a FHIR dateTime.
func ParseDateTime(s string) (DateTime, error) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return DateTime{}, syntaxError(TypeDateTime, s, "expected YYYY, YYYY-MM, YYYY-MM-DD or YYYY-MM-DDThh:mm:ss[.f][Z|+hh:mm]")
	}
	p, err := parseParts(TypeDateTime, s, m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Text: s, Value: p.value, Precision: p.precision, HasZone: m[8] != ""}, nil
}

// ParseInstant parses a FHIR instant.
func ParseInstant(s string) (Instant, error) {
	m := dateTimeRegex.FindStringSubmatch(s)
	if m == nil || m[4] == "" || m[8] == "" {
		return Instant{}, syntaxError(TypeInstant, s, "expected YYYY-MM-DDThh:mm:ss[.f] with time zone")
	}
	p, err := parseParts(TypeInstant, s, m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	if err != nil {
		return Instant{}, err
	}
	return Instant{Text: s, Value: p.value}, nil
}

// ParseTime parses a FHIR time.
func ParseTime(s string) (Time, error) {
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return Time{}, syntaxError(TypeTime, s, "expected hh:mm:ss[.f]")
	}
	h, mi, sec, ns, err := parseClock(TypeTime, s, m[1], m[2], m[3], m[4])
	if err != nil {
		return Time{}, err
	}
	prec := PrecisionSecond
	if m[4] != "" {
		prec = PrecisionFraction
	}
	return Time{
		Text:      s,
		Value:     time.Date(0, time.January, 1, h, mi, sec, ns, time.UTC),
		Precision: prec,
	}, nil
}

type parts struct {
	value     time.Time
	precision Precision
}

func parseParts(code, s, year, month, day, hour, minute, second, fraction, zone string) (parts, error) {
	y, _ := strconv.Atoi(year)
	if y < 1 {
		return parts{}, syntaxError(code, s, "year must be between 0001 and 9999")
	}
	p := parts{precision: PrecisionYear}
	mo, d := 1, 1
	if month != "" {
		mo, _ = strconv.Atoi(month)
		if mo < 1 || mo > 12 {
			return parts{}, syntaxError(code, s, "month must be between 01 and 12")
		}
		p.precision = PrecisionMonth
	}
	if day != "" {
		d, _ = strconv.Atoi(day)
		if d < 1 || d > daysIn(y, time.Month(mo)) {
			return parts{}, syntaxError(code, s, "day %d does not exist in %04d-%02d", d, y, mo)
		}
		p.precision = PrecisionDay
	}

	loc := time.UTC
	h, mi, sec, ns := 0, 0, 0, 0
	if hour != "" {
		var err error
		h, mi, sec, ns, err = parseClock(code, s, hour, minute, second, fraction)
		if err != nil {
			return parts{}, err
		}
		p.precision = PrecisionSecond
		if fraction != "" {
			p.precision = PrecisionFraction
		}
		if zone != "" {
			loc, err = parseZone(code, s, zone)
			if err != nil {
				return parts{}, err
			}
		}
	}
	p.value = time.Date(y, time.Month(mo), d, h, mi, sec, ns, loc)
	return p, nil
}

func parseClock(code, s, hour, minute, second, fraction string) (h, m, sec, ns int, err error) {
	h, _ = strconv.Atoi(hour)
	m, _ = strconv.Atoi(minute)
	sec, _ = strconv.Atoi(second)
	if h > 23 {
		return 0, 0, 0, 0, syntaxError(code, s, "hour must be between 00 and 23")
	}
	if m > 59 {
		return 0, 0, 0, 0, syntaxError(code, s, "minute must be between 00 and 59")
	}
	if sec > 60 {
		return 0, 0, 0, 0, syntaxError(code, s, "second must be between 00 and 60")
	}
	// time.Time has no leap seconds; the text keeps the 60.
	if sec == 60 {
		sec = 59
	}
	if fraction != "" {
		f := fraction
		for len(f) < 9 {
			f += "0"
		}
		ns, _ = strconv.Atoi(f)
	}
	return h, m, sec, ns, nil
}

func parseZone(code, s, zone string) (*time.Location, error) {
	if zone == "Z" {
		return time.UTC, nil
	}
	h, _ := strconv.Atoi(zone[1:3])
	m, _ := strconv.Atoi(zone[4:6])
	if h > 14 || m > 59 || (h == 14 && m != 0) {
		return nil, syntaxError(code, s, "time zone offset must be between -14:00 and +14:00")
	}
	off := h*3600 + m*60
	if zone[0] == '-' {
		off = -off
	}
	return time.FixedZone("", off), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
