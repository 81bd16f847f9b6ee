package commands

import (
	"context"

	"git.home.luguber.info/inful/sitetasks/internal/logfields"
	"git.home.luguber.info/inful/sitetasks/internal/tasks"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Draft bool `short:"D" help:"Include content marked as draft"`
}

func (s *ServeCmd) Run(ctx context.Context, g *Global) error {
	g.Logger.Info("Serving site, press Ctrl+C to stop", logfields.Dir(g.Dir), logfields.Draft(s.Draft))
	return tasks.Serve(ctx, g.Exec, tasks.ServeOptions{Draft: s.Draft})
}
