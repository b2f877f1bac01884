// generateHTML.go
package main

import (
	"fmt"
	"strings"
)

// generateHTML wraps the generated SVG in a standalone preview page with a
// small caption describing the pass.
func generateHTML(art Artwork) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>Generated Pattern</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body { margin: 0; padding: 40px; font-family: sans-serif; background: #f5f5f5; }\n")
	b.WriteString(".artwork { margin: 20px auto; width: fit-content; box-shadow: 0 2px 12px rgba(0,0,0,0.15); }\n")
	b.WriteString(".caption { text-align: center; color: #555; font-size: 13px; margin-top: 12px; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString(`<div class="artwork">` + "\n")
	b.WriteString(art.Doc)
	b.WriteString("</div>\n")

	status := fmt.Sprintf("%d elements", art.Result.TotalElements)
	if art.Result.Failed {
		status = "generation failed"
	}
	fmt.Fprintf(&b, `<div class="caption">pattern %s · seed %d · %s</div>`,
		escapeXML(art.Result.PatternType), art.Result.Seed, status)
	b.WriteString("\n</body>\n</html>\n")

	return b.String()
}
