package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/archon/internal/review"
)

// Writer writes a review in a specific format.
type Writer interface {
	Write(w io.Writer, r *review.ArchitectureReview) error
}

// Formats lists the supported format names.
var Formats = []string{"text", "json", "markdown"}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReview renders r in format to outPath, or to stdout when outPath is
// empty.
func WriteReview(r *review.ArchitectureReview, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	if outPath == "" {
		return writer.Write(os.Stdout, r)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writer.Write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
