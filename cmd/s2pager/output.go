package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/s2pager"
)

// cursorFlags are shared by every streaming command.
type cursorFlags struct {
	resume string
	offset int
	limit  int
}

func (f *cursorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.resume, "resume", "", "resume token printed by a previous run")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "offset of the first element")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of elements (0 streams the whole listing)")
}

func (f *cursorFlags) cursor() (s2pager.Cursor, error) {
	if f.resume != "" {
		return s2pager.DecodeCursor(f.resume)
	}
	if f.offset < 0 || f.limit < 0 {
		return s2pager.Cursor{}, fmt.Errorf("offset and limit must not be negative")
	}
	if f.limit > 0 {
		return s2pager.Limited(f.offset, f.limit), nil
	}

	return s2pager.WithStart(f.offset), nil
}

// printLines writes every value as one JSON line.
func printLines[T any](out io.Writer, values []T) error {
	enc := json.NewEncoder(out)
	for _, v := range values {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("cannot encode output: %w", err)
		}
	}

	return nil
}

// printResume reports where an interrupted or bounded stream can continue.
func printResume(out io.Writer, c s2pager.Cursor) {
	if c.CanProgress() {
		fmt.Fprintf(out, "resume: %s\n", c)
	}
}
