package orgchart

// DefaultColor is the fill used for categories missing from the table.
const DefaultColor = "#f0f0f0"

// categoryColors maps roster categories to node fill colors.
var categoryColors = map[string]string{
	"Command":           "#ffcccc", // light red
	"Operations":        "#ccddff", // light blue
	"Logistics Section": "#ccffcc", // light green
	"24 Hour Lines":     "#ffccff", // light purple
	"default":           DefaultColor,
}

// ColorFor returns the fill color for a roster category. Matching is exact
// and case-sensitive; anything unknown gets [DefaultColor].
func ColorFor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultColor
}
