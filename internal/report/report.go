package report

import (
	"fmt"
	"io"
	"iter"
)

// Header is printed before the model names
const Header = "Available Models:"

// Print writes the header followed by one "- name" line per model. When err
// is non-nil only a single "Error: ..." line is written.
func Print(w io.Writer, names iter.Seq[string], err error) error {
	if err != nil {
		_, werr := fmt.Fprintf(w, "Error: %v\n", err)
		return werr
	}

	if _, werr := fmt.Fprintln(w, Header); werr != nil {
		return werr
	}
	if names == nil {
		return nil
	}
	for name := range names {
		if _, werr := fmt.Fprintf(w, "- %s\n", name); werr != nil {
			return werr
		}
	}
	return nil
}
