package commands

import (
	"context"

	"git.home.luguber.info/inful/sitetasks/internal/tasks"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (b *BuildCmd) Run(ctx context.Context, g *Global) error {
	return tasks.Build(ctx, g.Exec)
}
