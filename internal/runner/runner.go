// Package runner executes a resolved command through a shell and captures its output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"

	"github.com/aboe026/software-update-checker-sub000/internal/lib/shells"
)

type Options struct {
	// Shell overrides the platform default shell when not empty
	Shell string
	// Dir is the working directory, empty means the current one
	Dir string
}

// ExecutionError is a failed process run.
//
// Stderr content takes precedence over the process error in the message.
type ExecutionError struct {
	Command  string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// bootstrapMissingModule is what a bundled executable prints when it is
// re-invoked as a subprocess and its bootstrap cannot locate the entry module.
var bootstrapMissingModule = regexp.MustCompile(`(?s)Cannot find module.*bootstrap`)

type Runner struct {
	// SelfEntrypoint is the entry file of the bundle this process runs from.
	//
	// When set, a run failing with the bootstrap signature is retried once with
	// the entrypoint appended as an extra positional argument.
	SelfEntrypoint string
}

func New() *Runner {
	return &Runner{}
}

// Run executes command (with args appended verbatim) and returns trimmed stdout
// followed directly by trimmed stderr.
func (r *Runner) Run(ctx context.Context, command string, args string, options Options) (string, error) {
	line := JoinCommand(command, args)

	output, err := r.run(ctx, line, options)
	if err != nil && r.shouldRetryWithEntrypoint(err) {
		slog.Debug("Retry with self entrypoint", "line", line, "entrypoint", r.SelfEntrypoint)

		return r.run(ctx, line+" "+shells.Quote(r.SelfEntrypoint), options)
	}

	return output, err
}

// JoinCommand concatenates command and args with one space, args are not escaped
func JoinCommand(command string, args string) string {
	if args == "" {
		return command
	}
	return command + " " + args
}

func (r *Runner) shouldRetryWithEntrypoint(err error) bool {
	if r.SelfEntrypoint == "" {
		return false
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		return false
	}

	return bootstrapMissingModule.MatchString(execErr.Error())
}

func (r *Runner) run(ctx context.Context, line string, options Options) (string, error) {
	argv, err := shells.Argv(options.Shell, line)
	if err != nil {
		return "", &ExecutionError{Command: line, ExitCode: -1, Err: err}
	}

	slog.Debug("Run command", "argv", shells.Join(argv), "dir", options.Dir)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if options.Dir != "" {
		cmd.Dir = options.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		result := &ExecutionError{
			Command:  line,
			Stderr:   strings.TrimSpace(stderr.String()),
			ExitCode: -1,
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}

		return "", result
	}

	return strings.TrimSpace(stdout.String()) + strings.TrimSpace(stderr.String()), nil
}
