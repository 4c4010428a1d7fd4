package textgen

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mrsinham/physioreport/internal/findings"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region fallbacks used when no location has been chosen yet.
const (
	FallbackForm   = "[region]"
	FallbackReport = "affected area"
)

var lower = cases.Lower(language.English)

// RegionText names the examined region, e.g. "right shoulder". Back and
// neck never carry a side.
func RegionText(side findings.Side, loc findings.Location, fallback string) string {
	if loc == findings.LocationNone {
		return fallback
	}
	if loc.IsSpinal() {
		return string(loc)
	}
	if side != findings.SideNone {
		return string(side) + " " + string(loc)
	}
	return string(loc)
}

// JoinWithAnd joins items as "A, B and C".
func JoinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// FormatDate renders an ISO date as "5 Jan 2024". Empty or malformed input
// gives an empty string.
func FormatDate(iso string) string {
	return FormatDateOr(iso, "")
}

// FormatDateOr is FormatDate with a caller-chosen fallback such as "N/A".
func FormatDateOr(iso, fallback string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return fallback
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return fallback
}

// ParseDate parses the same layouts FormatDate accepts.
func ParseDate(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LowercaseFirstWord lowercases the first whitespace-delimited word of s and
// leaves the rest untouched.
func LowercaseFirstWord(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return s
	}
	end := strings.IndexFunc(s[start:], unicode.IsSpace)
	if end < 0 {
		end = len(s)
	} else {
		end += start
	}
	return s[:start] + lower.String(s[start:end]) + s[end:]
}

// AutoAddPercent appends "%" when the trimmed value is all digits.
func AutoAddPercent(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return s
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return s
		}
	}
	return t + "%"
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// OrPlaceholder returns the trimmed value, or the placeholder when it is empty.
func OrPlaceholder(s, placeholder string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return placeholder
}

// FormatGrade renders a muscle grade as "4/5".
func FormatGrade(g string) string {
	g = strings.TrimSpace(g)
	if g == "" {
		return "[Grade]"
	}
	if strings.Contains(g, "/") {
		return g
	}
	return g + "/5"
}

// Ordinal renders 1 as "1st", 2 as "2nd" and so on.
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// Slug turns a display name into a stable id fragment: "Index finger"
// becomes "index_finger".
func Slug(s string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range lower.String(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return sb.String()
}

// TrimSentence drops surrounding space and a trailing full stop so free text
// can be spliced into a generated sentence.
func TrimSentence(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".")
}
