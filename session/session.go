// Package session runs the interactive explore-and-restart loop.
package session

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/spektr-org/bikeshare/pager"
	"github.com/spektr-org/bikeshare/prompt"
	"github.com/spektr-org/bikeshare/report"
	"github.com/spektr-org/bikeshare/trips"
)

const askRestart = "\nWould you like to restart? Enter yes or no.\n"

// Session wires the input collector, loader, reporters and pager.
type Session struct {
	registry *trips.Registry
	prompter *prompt.Prompter
	reporter *report.Reporter
	pageSize int
}

// New creates a Session. A pageSize below 1 means pager.DefaultPageSize.
func New(registry *trips.Registry, p *prompt.Prompter, r *report.Reporter, pageSize int) *Session {
	return &Session{registry: registry, prompter: p, reporter: r, pageSize: pageSize}
}

// Run loops until the user declines to restart or input runs out.
// Load failures end the loop with an error.
func (s *Session) Run() error {
	for iteration := 1; ; iteration++ {
		id := uuid.New()
		log.Printf("🚲 Session %s: iteration %d", id, iteration)

		restart, err := s.iterate()
		if errors.Is(err, prompt.ErrNoInput) {
			log.Printf("🛑 Session %s: input closed", id)
			s.prompter.Say("")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			log.Printf("👋 Session %s: finished", id)
			return nil
		}
		s.prompter.Say("")
	}
}

func (s *Session) iterate() (bool, error) {
	sel, err := prompt.CollectSelection(s.prompter, s.registry)
	if err != nil {
		return false, err
	}

	table, err := trips.Load(s.registry, sel)
	if err != nil {
		return false, err
	}

	s.reporter.All(table)

	if err := pager.New(table.View, s.prompter, s.pageSize).Run(); err != nil {
		return false, err
	}

	answer, err := s.prompter.Ask(askRestart)
	if err != nil {
		return false, err
	}
	// Only an exact "yes" restarts; this prompt alone is case-sensitive.
	return answer == "yes", nil
}
