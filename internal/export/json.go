package export

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/courtdata/statline/internal/pipeline"
)

// WriteJSON writes the full pipeline result as indented JSON. Scores keep
// their full precision here; JSON consumers round for display themselves.
func WriteJSON(w io.Writer, result *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return eris.Wrap(err, "export: write json")
	}
	return nil
}
