package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/sitetasks/internal/hugo"
	"git.home.luguber.info/inful/sitetasks/internal/version"
)

// InfoCmd implements the 'info' command.
type InfoCmd struct{}

func (i *InfoCmd) Run(ctx context.Context, g *Global) error {
	binary := g.Config.Hugo.Binary

	hugoVersion := "not found"
	if path, err := hugo.LookPath(binary); err == nil {
		hugoVersion = path
		if v := hugo.DetectVersion(ctx, binary); v != "" {
			hugoVersion = v + " (" + path + ")"
		}
	}

	_, err := fmt.Fprintf(g.Stdout, "sitetasks %s\nhugo      %s\nsite dir  %s\n", version.String(), hugoVersion, g.Dir)
	return err
}
