package surface

import (
	"encoding/json"
	"io"

	"github.com/rbui/rbui/pkg/scoring"
)

// JSONRenderer writes a ScoreResult as the indented JSON report that the
// daemon also stores per run.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, result *scoring.ScoreResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// Platform names and issue messages are written as recorded ("A&B",
	// "<= 5"), not as \u0026 escapes.
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
