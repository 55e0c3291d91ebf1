package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateRange is one employment period at month precision. Days are ignored:
// any date is resolved to the first of its month. A bare year is treated as
// January of that year. An open range ("Present", "Current") ends now.
type DateRange struct {
	Start   time.Time
	End     time.Time
	Ongoing bool
	Text    string
}

// Months returns the length of the range in whole months, inclusive of the
// start month.
func (r DateRange) Months() int {
	years := r.End.Year() - r.Start.Year()
	months := int(r.End.Month()) - int(r.Start.Month())
	total := years*12 + months
	if total < 0 {
		return 0
	}
	return total
}

// datePattern pairs a compiled range regex with the parser for its captures.
type datePattern struct {
	name  string
	re    *regexp.Regexp
	parse func(groups []string, now time.Time) (DateRange, bool)
}

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

const rangeSep = `\s*(?:[-–—]|to)\s*`
const openEnd = `present|current`

// datePatterns is the ordered table of recognized range formats. Earlier
// patterns are more specific; text consumed by one pattern is not offered to
// the later ones.
var datePatterns = []datePattern{
	{
		name: "month-name range",
		re: regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s*(\d{4})` + rangeSep +
			`(?:(` + monthNames + `)\.?\s*(\d{4})|(` + openEnd + `))\b`),
		parse: func(g []string, now time.Time) (DateRange, bool) {
			start, ok := monthYear(g[1], g[2])
			if !ok {
				return DateRange{}, false
			}
			if g[5] != "" {
				return DateRange{Start: start, End: monthOf(now), Ongoing: true}, true
			}
			end, ok := monthYear(g[3], g[4])
			if !ok {
				return DateRange{}, false
			}
			return DateRange{Start: start, End: end}, true
		},
	},
	{
		name: "numeric month range",
		re: regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{4})` + rangeSep +
			`(?:(\d{1,2})/(\d{4})|(` + openEnd + `))\b`),
		parse: func(g []string, now time.Time) (DateRange, bool) {
			start, ok := numericMonthYear(g[1], g[2])
			if !ok {
				return DateRange{}, false
			}
			if g[5] != "" {
				return DateRange{Start: start, End: monthOf(now), Ongoing: true}, true
			}
			end, ok := numericMonthYear(g[3], g[4])
			if !ok {
				return DateRange{}, false
			}
			return DateRange{Start: start, End: end}, true
		},
	},
	{
		name: "year range",
		re: regexp.MustCompile(`(?i)\b((?:19|20)\d{2})` + rangeSep +
			`(?:((?:19|20)\d{2})|(` + openEnd + `))\b`),
		parse: func(g []string, now time.Time) (DateRange, bool) {
			startYear, _ := strconv.Atoi(g[1])
			start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
			if g[3] != "" {
				return DateRange{Start: start, End: monthOf(now), Ongoing: true}, true
			}
			endYear, _ := strconv.Atoi(g[2])
			end := time.Date(endYear, time.January, 1, 0, 0, 0, 0, time.UTC)
			return DateRange{Start: start, End: end}, true
		},
	},
}

// ExtractDateRanges finds all recognizable employment date ranges in text.
// Malformed candidates (month 13, end before start) are skipped, never fatal.
func ExtractDateRanges(text string, now time.Time) []DateRange {
	var ranges []DateRange
	remaining := text

	for _, p := range datePatterns {
		matches := p.re.FindAllStringSubmatchIndex(remaining, -1)
		if matches == nil {
			continue
		}
		var kept []byte
		last := 0
		for _, loc := range matches {
			groups := make([]string, p.re.NumSubexp()+1)
			for i := 0; i <= p.re.NumSubexp(); i++ {
				if loc[2*i] >= 0 {
					groups[i] = remaining[loc[2*i]:loc[2*i+1]]
				}
			}
			r, ok := p.parse(groups, now)
			if ok && !r.End.Before(r.Start) {
				r.Text = remaining[loc[0]:loc[1]]
				ranges = append(ranges, r)
				// Blank out the consumed span so broader patterns cannot
				// re-match part of it.
				kept = append(kept, remaining[last:loc[0]]...)
				kept = append(kept, strings.Repeat(" ", loc[1]-loc[0])...)
				last = loc[1]
			}
		}
		if kept != nil {
			kept = append(kept, remaining[last:]...)
			remaining = string(kept)
		}
	}

	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start.Before(ranges[j].Start) })
	return ranges
}

// MergeRanges unions overlapping or touching ranges so overlapping roles are
// counted once. Input must be sorted by start.
func MergeRanges(ranges []DateRange) []DateRange {
	if len(ranges) == 0 {
		return nil
	}
	merged := []DateRange{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			last.Ongoing = last.Ongoing || r.Ongoing
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// TotalMonths sums the lengths of merged ranges.
func TotalMonths(merged []DateRange) int {
	total := 0
	for _, r := range merged {
		total += r.Months()
	}
	return total
}

// LargestGapMonths returns the widest gap between consecutive merged ranges.
func LargestGapMonths(merged []DateRange) int {
	largest := 0
	for i := 1; i < len(merged); i++ {
		gap := DateRange{Start: merged[i-1].End, End: merged[i].Start}.Months()
		if gap > largest {
			largest = gap
		}
	}
	return largest
}

func monthYear(monthName, year string) (time.Time, bool) {
	m, ok := monthIndex[strings.ToLower(monthName)[:3]]
	if !ok {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), true
}

func numericMonthYear(month, year string) (time.Time, bool) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC), true
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}
