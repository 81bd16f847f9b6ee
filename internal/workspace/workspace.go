package workspace

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	derrors "git.home.luguber.info/inful/sitetasks/internal/foundation/errors"
	"git.home.luguber.info/inful/sitetasks/internal/logfields"
)

// SiteConfigFiles are the configuration files hugo recognises in a site directory.
var SiteConfigFiles = []string{
	"hugo.toml", "hugo.yaml", "hugo.yml", "hugo.json",
	"config.toml", "config.yaml", "config.yml", "config.json",
}

// siteConfigDir is hugo's configuration directory (config/_default, config/production, ...).
const siteConfigDir = "config"

// Options control how the site directory is chosen.
type Options struct {
	// Chdir, when set, is used as the site directory without detection.
	Chdir string
	// DetectRoot walks up to the nearest directory holding a hugo site
	// configuration, never leaving the enclosing git worktree.
	DetectRoot bool
}

// Resolve returns the absolute directory tasks should run in.
func Resolve(opts Options) (string, error) {
	start := opts.Chdir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", derrors.RuntimeError("cannot determine working directory").WithCause(err).Build()
		}
		start = wd
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", derrors.ValidationError("invalid directory").WithCause(err).WithContext(logfields.KeyDir, start).Build()
	}
	if st, statErr := os.Stat(abs); statErr != nil || !st.IsDir() {
		return "", derrors.NotFoundError(fmt.Sprintf("site directory not found or not a directory: %s", abs)).
			WithCause(statErr).
			WithContext(logfields.KeyDir, abs).
			Build()
	}

	if opts.Chdir != "" || !opts.DetectRoot {
		return abs, nil
	}
	return FindSiteRoot(abs)
}

// FindSiteRoot returns the nearest directory at or above start that holds a
// hugo site configuration. The search stops at the root of the git worktree
// containing start; outside a (non-bare) repository only start itself is
// checked. When no site configuration is found, start is returned.
func FindSiteRoot(start string) (string, error) {
	limit, err := worktreeRoot(start)
	if err != nil {
		return "", err
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		if IsSiteDir(dir) {
			if dir != start {
				slog.Debug("Using enclosing hugo site as site directory", logfields.Dir(dir))
			}
			return dir, nil
		}
		if dir == limit || filepath.Dir(dir) == dir {
			break
		}
	}

	slog.Debug("No hugo site configuration found, using start directory", logfields.Dir(start))
	return start, nil
}

// IsSiteDir reports whether dir holds a hugo site configuration file or
// configuration directory.
func IsSiteDir(dir string) bool {
	for _, name := range SiteConfigFiles {
		if st, err := os.Stat(filepath.Join(dir, name)); err == nil && !st.IsDir() {
			return true
		}
	}
	st, err := os.Stat(filepath.Join(dir, siteConfigDir))
	return err == nil && st.IsDir()
}

// worktreeRoot returns the root of the git worktree containing start, or start
// when there is none. The result always is start or one of its ancestors.
func worktreeRoot(start string) (string, error) {
	repo, err := git.PlainOpenWithOptions(start, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return start, nil
	}
	if err != nil {
		return "", fmt.Errorf("open git repository at %s: %w", start, err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return start, nil
	}
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	if !within(root, start) {
		return start, nil
	}
	return root, nil
}

func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
