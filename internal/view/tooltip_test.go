package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/stemmap/internal/model"
)

func TestFormatTooltip(t *testing.T) {
	e := model.Entity{
		Name:        "Ana Quispe",
		Category:    "Física",
		Institution: "UMSA",
		Achievement: "Premio nacional",
	}

	assert.Equal(t,
		"<b>Ana Quispe</b><br>Física<br><i>Institución:</i> UMSA<br><i>Logros:</i> Premio nacional",
		FormatTooltip(e),
	)
}

func TestFormatTooltip_EscapesFields(t *testing.T) {
	e := model.Entity{
		Name:        "<script>x</script>",
		Category:    "A & B",
		Achievement: `"quoted"`,
	}

	got := FormatTooltip(e)
	assert.Contains(t, got, "<b>&lt;script&gt;x&lt;/script&gt;</b>")
	assert.Contains(t, got, "A &amp; B")
	assert.Contains(t, got, "&#34;quoted&#34;")
	assert.Contains(t, got, "<i>Institución:</i> <br>", "empty institution keeps its label")
}
