package notify

import (
	"fmt"
	"strings"

	"date-topics/internal/topics"
)

// EmptyMessage is the fixed fallback text rendered when the current slot has
// no topics (not generated yet, empty parse, or queried slot never produced).
const EmptyMessage = "No topics available for this time slot."

// FormatMessage renders topics as a 1-indexed numbered list in stored order,
// one line per topic.
func FormatMessage(list []topics.Topic) string {
	if len(list) == 0 {
		return EmptyMessage
	}
	lines := make([]string, 0, len(list))
	for i, t := range list {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, t.Topic, t.Details))
	}
	return strings.Join(lines, "\n")
}
