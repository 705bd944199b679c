package layout

import (
	"strings"

	ggtext "github.com/gogpu/gg/text"
)

const ellipsis = "..."

// truncate shortens s until it fits maxWidth with the ellipsis appended,
// measuring real glyph advances. Names are never wrapped in tabular views.
func truncate(face ggtext.Face, s string, maxWidth float64) string {
	if s == "" {
		return ""
	}
	if face.Advance(s) <= maxWidth {
		return s
	}
	ew := face.Advance(ellipsis)
	r := []rune(s)
	for len(r) > 0 && face.Advance(string(r))+ew > maxWidth {
		r = r[:len(r)-1]
	}
	return string(r) + ellipsis
}

// wrapText splits free-form text into paint-ready lines: explicit newlines
// first, then greedy word packing against the measured width. An empty
// paragraph yields exactly one empty line. Both the height pass and the
// paint pass consume this one result, so their line counts cannot drift.
func wrapText(face ggtext.Face, s string, maxWidth float64) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			test := line + " " + w
			if face.Advance(test) > maxWidth {
				lines = append(lines, line)
				line = w
			} else {
				line = test
			}
		}
		lines = append(lines, line)
	}
	return lines
}
