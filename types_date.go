package wealthsheet

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according
// to the layout defined by the argument. See the documentation for [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// MonthsBetween returns the integer month distance from a to b using calendar
// component subtraction. Elapsed-time division is deliberately avoided: it is
// off by one around DST transitions and month boundaries.
func MonthsBetween(a, b Date) int {
	return (b.y-a.y)*12 + int(b.m) - int(a.m)
}

// LogicalToday returns the date to treat as "today" when viewing a given
// context year. For the real current year it is the real current date; for any
// other (archived) year it is December 31 of that year, so that month-to-date
// and rolling windows cover the entire archived year.
func LogicalToday(contextYear int) Date {
	today := Today()
	if contextYear == today.Year() {
		return today
	}
	return NewDate(contextYear, time.December, 31)
}

var (
	// A literal spreadsheet template like "yyyy-mm-dd" or "DD/MM/YYYY" is not a date.
	placeholderRE = regexp.MustCompile(`(?i)^[ymd/.\s-]+$`)
	isoLikeRE     = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})`)
	monthYearRE   = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s-]+(\d{2,4})$`)
)

// fallbackLayouts are tried last, in order, by ParseFlexible.
var fallbackLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01/02/2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseFlexible parses a date from the loose formats found in spreadsheet
// exports. It tries, in order: ISO-like Y-M-D with "-", "/" or "." separators;
// a three-letter-month/year shorthand ("Jan-24"); and a set of generic layouts
// accepted only when the resulting year exceeds 1990 (guards against short
// numeric strings misread as dates). The second return value reports whether
// the string was recognized as a date.
func ParseFlexible(raw string) (Date, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || placeholderRE.MatchString(s) {
		return Date{}, false
	}

	if m := isoLikeRE.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return NewDate(year, time.Month(month), day), true
		}
		return Date{}, false
	}

	if m := monthYearRE.FindStringSubmatch(s); m != nil {
		month, ok := monthByName(m[1])
		if !ok {
			return Date{}, false
		}
		year, _ := strconv.Atoi(m[2])
		if year < 100 {
			year += 2000
		}
		return NewDate(year, month, 1), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Year() > 1990 {
			return NewDate(t.Date()), true
		}
	}
	return Date{}, false
}

func monthByName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()[:3]) == name {
			return m, true
		}
	}
	return 0, false
}

// MustParse is like ParseFlexible but panics when the string is not a date.
// It is a test and fixture helper.
func MustParse(str string) Date {
	d, ok := ParseFlexible(str)
	if !ok {
		panic(fmt.Sprintf("invalid date %q", str))
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(DateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*d = NewDate(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
