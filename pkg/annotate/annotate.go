// Package annotate extracts structured attributes from free-form note text.
//
// The heuristics are deliberately simple: a fixed keyword list, first match
// wins, no multi-language support. This matches what users of inline
// annotations actually type ("call bob tomorrow at 5pm #high") without
// pretending to be a natural-language date parser.
package annotate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Priority values produced by the parser. The package is dependency-free on
// purpose; callers map these onto their own enum at the boundary.
const (
	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Result holds the structured annotations extracted from raw text.
type Result struct {
	Text      string
	Important bool
	Priority  string
	DueDate   *time.Time
}

var (
	importantRe = regexp.MustCompile(`(?i)#important`)
	priorityRe  = regexp.MustCompile(`(?i)#(low|normal|high|critical)`)
	timeRe      = regexp.MustCompile(`(?i)(\d{1,2})(:\d{2})?\s?(am|pm)?`)
)

// dateKeywords in scan order. The scan stops at the first keyword present in
// the raw text; later keywords are not also checked. The keyword is matched
// as a case-insensitive substring and is not removed from the text.
var dateKeywords = []string{
	"today", "tomorrow",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"next week",
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse extracts importance, priority and a due date from raw note text.
// It is pure and deterministic given now; keyword dates resolve relative to it.
func Parse(raw string, now time.Time) Result {
	res := Result{
		Text:     raw,
		Priority: PriorityNormal,
	}

	lower := strings.ToLower(raw)

	// Importance: "#important" anywhere or a literal "!".
	// All "#important" tokens are stripped, but only the first "!".
	if strings.Contains(lower, "#important") || strings.Contains(raw, "!") {
		res.Important = true
		res.Priority = PriorityHigh
		res.Text = importantRe.ReplaceAllString(res.Text, "")
		res.Text = strings.Replace(res.Text, "!", "", 1)
		res.Text = strings.TrimSpace(res.Text)
	}

	// Explicit priority tag overrides the importance-derived priority.
	// Only the first tag is honored.
	if m := priorityRe.FindStringSubmatchIndex(res.Text); m != nil {
		res.Priority = strings.ToLower(res.Text[m[2]:m[3]])
		res.Text = strings.TrimSpace(res.Text[:m[0]] + res.Text[m[1]:])
	}

	// Due-date keyword scan runs over the raw input so that stripping above
	// cannot hide a keyword. First match wins.
	for _, keyword := range dateKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		due := resolveKeyword(keyword, now)

		// Optional time-of-day refinement. Only applied when a date was
		// resolved; a bare time pattern never produces a due date.
		if m := timeRe.FindStringSubmatch(raw); m != nil {
			due = applyTime(due, m)
		}
		res.DueDate = &due
		break
	}

	res.Text = strings.TrimSpace(res.Text)
	return res
}

// resolveKeyword maps a keyword to a calendar date relative to now,
// normalized to local midnight.
func resolveKeyword(keyword string, now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch keyword {
	case "today":
		return midnight
	case "tomorrow":
		return midnight.AddDate(0, 0, 1)
	case "next week":
		return midnight.AddDate(0, 0, 7)
	}

	// Weekday name: the next occurrence strictly in the future.
	// If today is that weekday, resolve seven days out, never "today".
	target := weekdays[keyword]
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight.AddDate(0, 0, days)
}

// applyTime overwrites the time-of-day of due with the matched pattern.
// Conversion to 24h: pm adds 12 unless the hour is already 12; 12am maps to 0.
func applyTime(due time.Time, m []string) time.Time {
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2][1:])
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}
	return time.Date(due.Year(), due.Month(), due.Day(), hours, minutes, 0, 0, due.Location())
}
