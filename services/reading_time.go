package services

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ReadingTime estimates time-to-read at half a unit per word. An empty body
// still counts as one word.
func ReadingTime(body string) float64 {
	collapsed := strings.TrimSpace(whitespaceRun.ReplaceAllString(body, " "))
	words := strings.Split(collapsed, " ")
	return float64(len(words)) * 0.5
}
