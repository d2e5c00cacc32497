package dataset

// Prism is the default qualitative palette.
var Prism = []string{
	"rgb(95, 70, 144)",
	"rgb(29, 105, 150)",
	"rgb(56, 166, 165)",
	"rgb(15, 133, 84)",
	"rgb(115, 175, 72)",
	"rgb(237, 173, 8)",
	"rgb(225, 124, 5)",
	"rgb(204, 80, 62)",
	"rgb(148, 52, 110)",
	"rgb(111, 64, 112)",
	"rgb(102, 102, 102)",
}

// ColorAt returns the palette color for the record at position index.
// The palette must not be empty.
func ColorAt(palette []string, index int) string {
	return palette[index%len(palette)]
}
