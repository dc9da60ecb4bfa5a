// Package browser pages through the raw rows of a dataset on request.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/prompt"
	"github.com/theoremus-urban-solutions/bikeshare-stats/trips"
)

const (
	askInspect  = "\nwould you like to inspect the raw data? \"yes\" or \"no\":\n"
	askContinue = "\nWould you like to see more data? continue = \"ENTER\", exit = \"no\":\n"
)

// Browser shows consecutive, non-overlapping windows of rows
type Browser struct {
	prompt   *prompt.Prompter
	pageSize int
}

// New creates a browser showing pageSize rows per window; a non-positive
// size falls back to 5.
func New(p *prompt.Prompter, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Browser{prompt: p, pageSize: pageSize}
}

// Browse asks once whether to show raw data and, on "yes", prints windows
// until the user answers "no" or the rows run out. Closed input ends browsing
// without error; a cancelled ctx returns ctx.Err().
func (b *Browser) Browse(ctx context.Context, ds *trips.Dataset) error {
	ok, err := b.prompt.Confirm(ctx, askInspect, "yes")
	if errors.Is(err, prompt.ErrClosed) {
		return nil
	}
	if err != nil || !ok {
		return err
	}

	for start := 0; start < ds.Len(); start += b.pageSize {
		if start > 0 {
			stop, err := b.prompt.Confirm(ctx, askContinue, "no")
			if errors.Is(err, prompt.ErrClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
		end := min(start+b.pageSize, ds.Len())
		if err := writeWindow(b.prompt.Writer(), ds, start, end); err != nil {
			return err
		}
	}
	return nil
}

// writeWindow prints the header and rows [start, end) as an aligned table
// keyed by the row's position in the source file.
func writeWindow(w io.Writer, ds *trips.Dataset, start, end int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(ds.Header, "\t"))
	for _, t := range ds.Trips[start:end] {
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(t.Index), strings.Join(t.Raw, "\t"))
	}
	return tw.Flush()
}
