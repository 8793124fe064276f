package cli

import (
	"fmt"
	"io"

	"github.com/zeusync/bestiary/internal/core/catalog"
)

// render prints each monster as a "<label>:" header followed by one
// "<attribute>: <value>" line per attribute, with a blank line between
// monsters.
func render(w io.Writer, spawned []catalog.Spawned) error {
	for i, s := range spawned {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s:\n", s.Label); err != nil {
			return err
		}
		for _, a := range s.Monster.Attributes() {
			if _, err := fmt.Fprintf(w, "%s: %v\n", a.Label, a.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
