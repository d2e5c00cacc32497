package view

import (
	"html"
	"strings"

	"github.com/sells-group/stemmap/internal/model"
)

// FormatTooltip renders the hover text for a marker as the small HTML subset
// map widgets accept: bold name, category, then labelled institution and
// achievement lines. Field values are escaped.
func FormatTooltip(e model.Entity) string {
	var b strings.Builder
	b.WriteString("<b>")
	b.WriteString(html.EscapeString(e.Name))
	b.WriteString("</b><br>")
	b.WriteString(html.EscapeString(e.Category))
	b.WriteString("<br><i>Institución:</i> ")
	b.WriteString(html.EscapeString(e.Institution))
	b.WriteString("<br><i>Logros:</i> ")
	b.WriteString(html.EscapeString(e.Achievement))
	return b.String()
}
