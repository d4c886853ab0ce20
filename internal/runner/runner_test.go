package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("posix shell required")
	}
}

func TestJoinCommand(t *testing.T) {
	assert.Equal(t, "git", JoinCommand("git", ""))
	assert.Equal(t, "git --version", JoinCommand("git", "--version"))
	assert.Equal(t, "node -e 'console.log(1)'", JoinCommand("node", "-e 'console.log(1)'"))
}

func TestRun(t *testing.T) {
	skipOnWindows(t)
	ctx := context.Background()

	t.Run("stdout and stderr are trimmed and concatenated", func(t *testing.T) {
		out, err := New().Run(ctx, "printf", `' foo \n'; printf ' bar\n' >&2`, Options{})
		require.NoError(t, err)
		assert.Equal(t, "foobar", out)
	})

	t.Run("stderr only output is kept", func(t *testing.T) {
		out, err := New().Run(ctx, "echo", "v1.2.3 >&2", Options{})
		require.NoError(t, err)
		assert.Equal(t, "v1.2.3", out)
	})

	t.Run("args are passed verbatim to the shell", func(t *testing.T) {
		out, err := New().Run(ctx, "echo", "a   b", Options{})
		require.NoError(t, err)
		assert.Equal(t, "a b", out)
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("3.1.4\n"), 0644))

		out, err := New().Run(ctx, "cat", "VERSION", Options{Dir: dir})
		require.NoError(t, err)
		assert.Equal(t, "3.1.4", out)
	})

	t.Run("shell override", func(t *testing.T) {
		out, err := New().Run(ctx, "echo", "$0", Options{Shell: "/bin/sh"})
		require.NoError(t, err)
		assert.Equal(t, "/bin/sh", out)
	})

	t.Run("failure with stderr uses stderr as message", func(t *testing.T) {
		_, err := New().Run(ctx, "echo", "'boom' >&2; exit 3", Options{})
		require.Error(t, err)
		assert.Equal(t, "boom", err.Error())

		var execErr *ExecutionError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, 3, execErr.ExitCode)
		assert.Equal(t, "echo 'boom' >&2; exit 3", execErr.Command)
	})

	t.Run("failure without stderr uses process error", func(t *testing.T) {
		_, err := New().Run(ctx, "exit", "7", Options{})
		require.Error(t, err)
		assert.Equal(t, "exit status 7", err.Error())
	})

	t.Run("missing working directory", func(t *testing.T) {
		_, err := New().Run(ctx, "true", "", Options{Dir: filepath.Join(t.TempDir(), "missing")})
		var execErr *ExecutionError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, -1, execErr.ExitCode)
	})
}

func TestRunSelfEntrypoint(t *testing.T) {
	skipOnWindows(t)
	ctx := context.Background()

	dir := t.TempDir()
	script := filepath.Join(dir, "bundle.sh")
	// fails like a bundle that cannot find its entry module unless one is given
	err := os.WriteFile(script, []byte(`#!/bin/sh
if [ -z "$2" ]; then
  echo "Error: Cannot find module '/snapshot/app/main.js'" >&2
  echo "    at /pkg/prelude/bootstrap.js:1930:26" >&2
  exit 1
fi
echo "app $1 via $2"
`), 0755)
	require.NoError(t, err)

	t.Run("retries with entrypoint", func(t *testing.T) {
		r := &Runner{SelfEntrypoint: "/snapshot/app/main.js"}

		out, err := r.Run(ctx, script, "--version", Options{})
		require.NoError(t, err)
		assert.Equal(t, "app --version via /snapshot/app/main.js", out)
	})

	t.Run("no retry without entrypoint", func(t *testing.T) {
		_, err := New().Run(ctx, script, "--version", Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot find module")
	})

	t.Run("no retry for other failures", func(t *testing.T) {
		r := &Runner{SelfEntrypoint: "/snapshot/app/main.js"}

		_, err := r.Run(ctx, "echo", "'Cannot find module foo' >&2; exit 1", Options{})
		require.Error(t, err)
		assert.Equal(t, "Cannot find module foo", err.Error())
	})
}
