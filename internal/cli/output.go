package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/modthree/pkg/domain"
)

// Output formats for evaluation results.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Result is the JSON shape of one evaluation.
type Result struct {
	Input  string         `json:"input"`
	Result int            `json:"result"`
	Path   []domain.State `json:"path,omitempty"`
}

// WriteResult prints one successful evaluation in the requested format.
func WriteResult(w io.Writer, format, input string, run *domain.Run) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(Result{Input: input, Result: run.Output, Path: run.Path})
	case FormatText, "":
		_, err := fmt.Fprintf(w, "Result: %d\n", run.Output)
		return err
	}
	return validFormat(format)
}

func validFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, "":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %q or %q)", format, FormatText, FormatJSON)
}
