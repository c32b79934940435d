package overlay

import (
	"fmt"

	"github.com/orbitlapse/orbitlapse/internal/domain"
)

// textLines builds the left-hand text block for one frame: the sampled
// date, the age block, then the lap counts for inner and outer bodies.
// Empty strings are spacer lines.
func textLines(info domain.FrameInfo) []string {
	heading, subject := "Age in:", "Earth"
	if info.Name != "" {
		heading = fmt.Sprintf("%s's age in:", info.Name)
		subject = info.Name
	}

	lines := []string{
		fmt.Sprintf("year – %d", info.Date.Year()),
		fmt.Sprintf("month – %02d", int(info.Date.Month())),
		fmt.Sprintf("day – %02d", info.Date.Day()),
		"",
		heading,
		fmt.Sprintf("years – %d", info.Age.Years),
		fmt.Sprintf("months – %d", info.Age.Months),
		fmt.Sprintf("days – %d", info.Age.Days),
		"",
		fmt.Sprintf("Number of times %s was lapped by:", subject),
	}
	for _, lc := range info.Inner {
		lines = append(lines, fmt.Sprintf("%s – %d", lc.Body, lc.Laps))
	}
	lines = append(lines, "", fmt.Sprintf("Number of times %s lapped:", subject))
	for _, lc := range info.Outer {
		lines = append(lines, fmt.Sprintf("%s – %d", lc.Body, lc.Laps))
	}
	return lines
}
