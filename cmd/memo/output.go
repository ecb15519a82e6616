package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"memo/internal/types"
)

func printNotes(out io.Writer, list []*types.Note) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tUPDATED")
	for _, note := range list {
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		updated := "-"
		if !note.UpdatedAt.IsZero() {
			updated = note.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", note.ID, title, updated)
	}
	_ = w.Flush()
}
