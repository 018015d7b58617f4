package grader

import (
	"strconv"
	"strings"
)

// parse state: which answer section the current line belongs to.
type section int

const (
	sectionNone section = iota
	sectionScore
	sectionRationale
	sectionFeedback
)

// ExtractResults pulls the numeric score, rationale, and feedback out of a
// free-form model reply.
//
// It walks the reply line by line. A line containing one of the field labels
// switches the active section; the score is parsed from the text after the
// last colon of its label line. Everything else accumulates into the active
// section's buffer. Nothing here ever fails: an unparseable score is 0.0 and
// missing sections come back empty, so this runs safely over FailureResponse
// and over whatever a small model actually produced.
func ExtractResults(raw string) Results {
	var (
		score     float64
		rationale strings.Builder
		feedback  strings.Builder
		current   = sectionNone
	)

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.Contains(line, LabelScore):
			score = parseScoreLine(line)
			current = sectionScore

		case strings.Contains(line, LabelRationale):
			current = sectionRationale

		case strings.Contains(line, LabelFeedback):
			current = sectionFeedback

		default:
			switch current {
			case sectionRationale:
				// Header lines never reach here, but a model can
				// repeat a label mid-section; keep those out of
				// the rationale.
				if !strings.Contains(line, LabelScore) && !strings.Contains(line, LabelFeedback) {
					rationale.WriteString(line)
					rationale.WriteString("\n")
				}
			case sectionFeedback:
				feedback.WriteString(line)
				feedback.WriteString("\n")
			}
		}
	}

	return Results{
		Score:     score,
		Rationale: strings.TrimSpace(rationale.String()),
		Feedback:  strings.TrimSpace(feedback.String()),
	}
}

// parseScoreLine reads the number after the last colon on the score line.
// Anything that does not parse as a float yields 0.
func parseScoreLine(line string) float64 {
	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return 0
	}
	text := strings.TrimSpace(line[idx+1:])

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}
