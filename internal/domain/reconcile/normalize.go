package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"
)

// Normalizers canonicalize raw field values before comparison. All of them
// are pure and total: any input, including the empty string, produces a
// defined canonical value, and applying a normalizer twice is the same as
// applying it once.

// phoneRegion is the default dialing region for bare national numbers.
const phoneRegion = "US"

// Sentinel strings the extraction service emits instead of an empty field.
var phoneSentinels = map[string]bool{
	"not set":              true,
	"not found on receipt": true,
}

var (
	clockRE      = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?:\s*([AaPp])\.?[Mm]\.?)?\s*$`)
	nonAddressRE = regexp.MustCompile(`[^a-z0-9 ]+`)
	spacesRE     = regexp.MustCompile(`\s+`)
)

// NormalizeAmount parses a money value into a decimal. A leading currency
// symbol and surrounding whitespace are tolerated. Non-numeric input
// returns ok=false and is treated as absent, never as zero.
func NormalizeAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// NormalizeClockTime parses a clock time into minutes since midnight on a
// 1440-minute wheel. Accepts 24-hour "HH:MM" and 12-hour "H:MM AM/PM"
// (case-insensitive, optional dots). Unparseable input returns ok=false.
func NormalizeClockTime(raw string) (int, bool) {
	m := clockRE.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return 0, false
	}
	if m[3] != "" {
		// 12-hour form: 12 AM is midnight, 12 PM is noon.
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
		if m[3] == "p" || m[3] == "P" {
			hour += 12
		}
	} else if hour > 23 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatClockTime renders minutes since midnight as 24-hour "HH:MM",
// the form field's own format.
func FormatClockTime(minutes int) string {
	minutes %= 1440
	if minutes < 0 {
		minutes += 1440
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeAddress lowercases, strips everything that is not a letter,
// digit or space, and collapses whitespace runs to one space.
func NormalizeAddress(raw string) string {
	s := strings.ToLower(raw)
	s = nonAddressRE.ReplaceAllString(s, "")
	s = spacesRE.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizePhone canonicalizes a phone number to its national digit
// string. Well-formed numbers go through libphonenumber; anything else
// falls back to stripping formatting characters and a single leading
// country code 1. Sentinel strings from the extractor normalize to empty.
func NormalizePhone(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || phoneSentinels[strings.ToLower(s)] {
		return ""
	}
	if p, err := libphonenumber.Parse(s, phoneRegion); err == nil && libphonenumber.IsValidNumber(p) {
		return libphonenumber.GetNationalSignificantNumber(p)
	}
	for _, cut := range []string{" ", "-", "(", ")", "+", "."} {
		s = strings.ReplaceAll(s, cut, "")
	}
	if len(s) == 11 && strings.HasPrefix(s, "1") {
		s = s[1:]
	}
	return s
}

// NormalizeWebsite lowercases a URL and strips the scheme, a leading
// "www." and one trailing slash.
func NormalizeWebsite(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	return s
}

// NormalizeName lowercases and trims. Punctuation is kept on purpose:
// "Cotton Patch Cafe" and "Cotton Patch Cafe - Wylie" are different
// restaurants and must not collapse to the same canonical form.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
