// Package pager shows the raw rows of a trip table a page at a time.
package pager

import (
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/prompt"
)

// DefaultPageSize is the number of rows per page.
const DefaultPageSize = 5

const (
	invalidAnswer = "\nThat was not a valid input. Please type yes or no. "
	missingCell   = "NaN"
)

// State is the position of the pager's dialogue.
type State int

const (
	Idle   State = iota // nothing shown yet
	Paging              // at least one page shown
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paging:
		return "paging"
	default:
		return "done"
	}
}

// Pager walks a view in fixed-size pages on request.
type Pager struct {
	view     engine.RecordView
	p        *prompt.Prompter
	pageSize int

	state    State
	location int // end of the last page shown
}

// New creates a Pager over view. A pageSize below 1 means DefaultPageSize.
func New(view engine.RecordView, p *prompt.Prompter, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pager{view: view, p: p, pageSize: pageSize}
}

// State returns where the dialogue stands.
func (pg *Pager) State() State { return pg.state }

// Run offers the first page, then further pages until the user declines
// or the cursor passes the end of the table by a full page.
func (pg *Pager) Run() error {
	for pg.state != Done {
		if err := pg.step(); err != nil {
			return err
		}
	}
	return nil
}

func (pg *Pager) step() error {
	switch pg.state {
	case Idle:
		more, err := pg.p.YesNo(fmt.Sprintf("\nWould you like to see %d rows of raw data? Please type yes or no. ", pg.pageSize), invalidAnswer)
		if err != nil {
			return err
		}
		if !more {
			pg.state = Done
			return nil
		}
		pg.location = pg.pageSize
		pg.p.Say("")
		pg.show()
		pg.state = Paging

	case Paging:
		if pg.location >= pg.view.Len()+pg.pageSize {
			pg.state = Done
			return nil
		}
		more, err := pg.p.YesNo(fmt.Sprintf("\nWould you like to see %d more rows? Please type yes or no. ", pg.pageSize), invalidAnswer)
		if err != nil {
			return err
		}
		if !more {
			pg.state = Done
			return nil
		}
		pg.location += pg.pageSize
		pg.show()
	}
	return nil
}

func (pg *Pager) show() {
	start := pg.location - pg.pageSize
	log.Printf("📄 Showing rows [%d, %d) of %d", start, pg.location, pg.view.Len())
	table := engine.BuildRowTable(pg.view, start, pg.location)
	Render(pg.p.Out(), table)
}

// Render writes a row table as aligned text. A table without rows prints
// "Empty DataFrame" and its column list instead.
func Render(w io.Writer, table *engine.TableData) {
	if table.IsEmpty() {
		labels := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			if col.Key == engine.IndexColumn {
				continue
			}
			labels = append(labels, col.Label)
		}
		fmt.Fprintln(w, "Empty DataFrame")
		fmt.Fprintf(w, "Columns: [%s]\n", strings.Join(labels, ", "))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Label
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == "" {
				cell = missingCell
			}
			cells[i] = cell
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	tw.Flush()
}
