package trips

import (
	"strconv"
	"strings"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
)

// All disables the month or day filter.
const All = "all"

// Months are the accepted month names, January first.
var Months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Days are the accepted day-of-week names.
var Days = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Selection is one validated set of filters for a session iteration.
type Selection struct {
	City  string
	Month string // month name or All
	Day   string // day name or All
}

// ParseCity returns the canonical city for user input, ignoring case and
// surrounding whitespace.
func (r *Registry) ParseCity(input string) (string, bool) {
	city := normalize(input)
	if indexOfCity(r.cities, city) < 0 {
		return "", false
	}
	return city, true
}

// ParseMonth accepts a full month name or "all".
func ParseMonth(input string) (string, bool) {
	return parseChoice(input, Months)
}

// ParseDay accepts a full day-of-week name or "all".
func ParseDay(input string) (string, bool) {
	return parseChoice(input, Days)
}

func parseChoice(input string, allowed []string) (string, bool) {
	v := normalize(input)
	if v == All {
		return v, true
	}
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}

// MonthIndex returns the 1-based index of a month name, or 0.
func MonthIndex(name string) int {
	name = normalize(name)
	for i, m := range Months {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the title-case name of a 1-based month number.
func MonthName(month int) string {
	if month < 1 || month > len(Months) {
		return ""
	}
	return TitleCase(Months[month-1])
}

// TitleCase upper-cases the first letter of each word.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Filters translates the selection into equality filters on the derived
// month and day_of_week columns.
func (s Selection) Filters() engine.Filters {
	f := engine.Filters{}
	if s.Month != "" && s.Month != All {
		f = f.Where(schema.ColMonth, strconv.Itoa(MonthIndex(s.Month)))
	}
	if s.Day != "" && s.Day != All {
		f = f.Where(schema.ColDayOfWeek, TitleCase(s.Day))
	}
	return f
}
