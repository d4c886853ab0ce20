package software

import (
	"context"
	"log/slog"

	"github.com/aboe026/software-update-checker-sub000/internal/executable"
	"github.com/aboe026/software-update-checker-sub000/internal/extract"
	"github.com/aboe026/software-update-checker-sub000/internal/fetch"
	"github.com/aboe026/software-update-checker-sub000/internal/lib/shells"
	"github.com/aboe026/software-update-checker-sub000/internal/runner"
)

type Runner interface {
	Run(ctx context.Context, command string, args string, options runner.Options) (string, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Resolver turns definitions into version strings.
//
// Errors of every step are returned as produced, without wrapping, so their
// messages point at the failing layer. Nothing is cached between calls.
type Resolver struct {
	Runner  Runner
	Fetcher Fetcher
}

func NewResolver(r Runner, f Fetcher) *Resolver {
	return &Resolver{Runner: r, Fetcher: f}
}

func NewDefaultResolver() *Resolver {
	return NewResolver(runner.New(), fetch.New(nil))
}

func (r *Resolver) ResolveInstalledVersion(ctx context.Context, d *Definition) (string, error) {
	command, err := executable.Resolve(d.Executable)
	if err != nil {
		return "", err
	}
	// static commands are user text and stay verbatim, a found file is one word
	if executable.WorkingDir(d.Executable) != "" {
		command = shells.QuoteProgram(d.Shell, command)
	}

	output, err := r.Runner.Run(ctx, command, d.Args, runner.Options{
		Shell: d.Shell,
		Dir:   executable.WorkingDir(d.Executable),
	})
	if err != nil {
		return "", err
	}

	slog.Debug("Installed version output", "name", d.Name, "output", output)

	return extract.ExtractString(output, d.InstalledRegex)
}

func (r *Resolver) ResolveLatestVersion(ctx context.Context, d *Definition) (string, error) {
	body, err := r.Fetcher.Fetch(ctx, d.URL)
	if err != nil {
		return "", err
	}

	return extract.ExtractString(body, d.LatestRegex)
}

// UpdateAvailable compares plain strings: "1.0.0" and "v1.0.0" differ.
func UpdateAvailable(installed, latest string) bool {
	return installed != latest
}

type Report struct {
	Definition *Definition

	Installed    string
	InstalledErr error
	Latest       string
	LatestErr    error
}

func (r *Report) Failed() bool {
	return r.InstalledErr != nil || r.LatestErr != nil
}

func (r *Report) UpdateAvailable() bool {
	return !r.Failed() && UpdateAvailable(r.Installed, r.Latest)
}

// Check resolves both versions of d, one after the other.
func (r *Resolver) Check(ctx context.Context, d *Definition) *Report {
	report := &Report{Definition: d}
	report.Installed, report.InstalledErr = r.ResolveInstalledVersion(ctx, d)
	report.Latest, report.LatestErr = r.ResolveLatestVersion(ctx, d)

	return report
}
