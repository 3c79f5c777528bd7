// Package codec isolates the string encodings used by the candidate and
// company storage columns. The wizard and usecases work with structured
// values; only this boundary knows that education is a blank-line/newline
// delimited string, achievements a semicolon list, and the company location
// a flattened display string.
package codec

import (
	"regexp"
	"strconv"
	"strings"

	"go-jobmatch-backend/internal/catalog"
	"go-jobmatch-backend/internal/domain"
)

const (
	entrySeparator = "\n\n"
	fieldSeparator = "\n"
)

// escapeField protects the two delimiters inside a field value so the
// encoding round-trips even when a user pastes multi-line text.
func escapeField(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

func unescapeField(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EncodeEducation serializes education entries as blank-line separated
// records of three newline-separated positional fields (degree, school,
// year).
func EncodeEducation(entries []domain.EducationEntry) string {
	if len(entries) == 0 {
		return ""
	}
	records := make([]string, 0, len(entries))
	for _, e := range entries {
		fields := []string{escapeField(e.Degree), escapeField(e.School), escapeField(e.Year)}
		records = append(records, strings.Join(fields, fieldSeparator))
	}
	return strings.Join(records, entrySeparator)
}

// DecodeEducation splits the stored education string back into entries.
// Records with fewer than three lines yield empty strings for the missing
// positions.
func DecodeEducation(encoded string) []domain.EducationEntry {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	var entries []domain.EducationEntry
	for _, record := range strings.Split(encoded, entrySeparator) {
		if strings.TrimSpace(record) == "" {
			continue
		}
		lines := strings.Split(record, fieldSeparator)
		var e domain.EducationEntry
		if len(lines) > 0 {
			e.Degree = unescapeField(lines[0])
		}
		if len(lines) > 1 {
			e.School = unescapeField(lines[1])
		}
		if len(lines) > 2 {
			e.Year = unescapeField(lines[2])
		}
		entries = append(entries, e)
	}
	return entries
}

// EncodeAchievements joins achievements with "; ". The delimiter is stripped
// from individual entries; achievements are display strings and the encoding
// cannot carry embedded semicolons.
func EncodeAchievements(achievements []string) string {
	cleaned := make([]string, 0, len(achievements))
	for _, a := range achievements {
		a = strings.TrimSpace(strings.ReplaceAll(a, ";", ","))
		if a != "" {
			cleaned = append(cleaned, a)
		}
	}
	return strings.Join(cleaned, "; ")
}

// DecodeAchievements splits on ';', trims, and drops empty segments.
func DecodeAchievements(encoded string) []string {
	if encoded == "" {
		return nil
	}
	var out []string
	for _, seg := range strings.Split(encoded, ";") {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// AvailabilityKey builds the "{day}-{slot}" key for one grid cell.
func AvailabilityKey(day, slot string) string {
	return day + "-" + slot
}

// ExpandAvailability turns the stored flat key list into the working set.
func ExpandAvailability(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// FlattenAvailability converts the working set back to the stored key list,
// ordered by the grid (Mon..Sun, then AM/PM/EVE) so output is deterministic.
func FlattenAvailability(set map[string]bool) []string {
	var keys []string
	for _, day := range catalog.DaysOfWeek {
		for _, slot := range catalog.TimeSlots {
			key := AvailabilityKey(day, slot)
			if set[key] {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// durationYears matches a leading integer followed by the word "year"
// ("3 years", "1 year"). Phrases like "6 months" or "2021 - Present" do not
// match and contribute zero; that mirrors the production behavior and only
// counts explicit multi-year tenures.
var durationYears = regexp.MustCompile(`(\d+)\s*year`)

// ExperienceYears derives the total years figure stored on the candidate
// row: the sum of the first "<n> year" match in each entry's free-text
// duration, case-insensitive.
func ExperienceYears(entries []domain.ExperienceEntry) int {
	total := 0
	for _, e := range entries {
		m := durationYears.FindStringSubmatch(strings.ToLower(e.Duration))
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
		}
	}
	return total
}

// ComposeLocation flattens the structured company address into the single
// display string stored on the companies row. Empty segments are dropped;
// the result is not re-parseable.
func ComposeLocation(loc domain.CompanyLocation) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{loc.Address, loc.City, loc.State, loc.Country} {
		if s := strings.TrimSpace(p); s != "" {
			parts = append(parts, s)
		}
	}
	composed := strings.Join(parts, ", ")
	if postal := strings.TrimSpace(loc.PostalCode); postal != "" {
		if composed == "" {
			return postal
		}
		composed += " " + postal
	}
	return composed
}
