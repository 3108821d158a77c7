// Package preview renders a generated deck's outline for the web UI.
package preview

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/mbalazs/deckgen/internal/pptx"
)

// Markdown renders the slide outline as a Markdown document.
func Markdown(outline []pptx.SlideText) string {
	var sb strings.Builder
	for _, slide := range outline {
		if slide.Title != "" {
			fmt.Fprintf(&sb, "## %s\n\n", slide.Title)
		}
		for _, line := range slide.Body {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// HTML converts the outline to embeddable HTML. Slide text originates from
// model and web responses, so it is escaped before rendering; blackfriday
// passes raw HTML spans through otherwise.
func HTML(outline []pptx.SlideText) template.HTML {
	return template.HTML(blackfriday.Run([]byte(Markdown(escapeOutline(outline)))))
}

func escapeOutline(outline []pptx.SlideText) []pptx.SlideText {
	escaped := make([]pptx.SlideText, len(outline))
	for i, slide := range outline {
		escaped[i] = slide
		escaped[i].Title = html.EscapeString(slide.Title)
		escaped[i].Body = make([]string, len(slide.Body))
		for j, line := range slide.Body {
			escaped[i].Body[j] = html.EscapeString(line)
		}
	}
	return escaped
}
