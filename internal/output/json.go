package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/archon/internal/review"
)

// JSONWriter outputs the full review record as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, r *review.ArchitectureReview) error {
	return JSON(w, r)
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
