package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub slug releases are published under.
const Repo = "justinpbarnett/dogsearch"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned when asked to replace a binary that was not built
// from a tagged release.
var ErrDevBuild = errors.New("cannot update a development build; install from a release first")

// Release holds information about an available update.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// Notice is the one-line hint printed when a newer release exists.
func (r Release) Notice(current string) string {
	return fmt.Sprintf("dogsearch %s is available (you have %s). Run 'dogsearch update' to upgrade.",
		r.Version, strings.TrimPrefix(current, "v"))
}

// Checker looks up and applies releases for one repository.
type Checker struct {
	Repo string
}

func NewChecker() *Checker {
	return &Checker{Repo: Repo}
}

// Check queries GitHub Releases for a version newer than current. It
// returns nil when current is already the latest or is not a release
// version ("dev", a dirty build).
func (c *Checker) Check(ctx context.Context, current string) (*Release, error) {
	if isDev(current) {
		return nil, nil
	}
	cv, err := parseSemver(current)
	if err != nil {
		return nil, nil
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(c.Repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	lv, err := semver.NewVersion(latest.Version())
	if err != nil || !lv.GreaterThan(cv) {
		return nil, nil
	}

	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, nil
}

// Apply downloads the latest release binary and replaces the running
// executable with it.
func (c *Checker) Apply(ctx context.Context, current string) (*Release, error) {
	if isDev(current) {
		return nil, ErrDevBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(c.Repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

func isDev(v string) bool {
	return v == "" || v == "dev"
}

// CompareVersions compares two semver strings.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Unparseable versions are treated as less than any valid version.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver strips a leading "v". Git-describe suffixes like
// "0.1.0-3-gabcdef" parse as prereleases of the base version.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
