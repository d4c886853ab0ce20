package executable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboe026/software-update-checker-sub000/internal/extract"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), nil, 0755)
		require.NoError(t, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	previousWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		err := os.Chdir(previousWd)
		require.NoError(t, err)
	})
}

func TestResolveStatic(t *testing.T) {
	p, err := Resolve(Static{Command: "git"})
	require.NoError(t, err)
	assert.Equal(t, "git", p)

	p, err = Resolve(&Static{Command: "/usr/bin/env node"})
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/env node", p)

	assert.Equal(t, "", WorkingDir(Static{Command: "git"}))
}

func TestResolveDynamic(t *testing.T) {
	t.Run("directory not found", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")

		for _, regex := range []string{"tool-(.*)", "(", ""} {
			_, err := Resolve(Dynamic{Directory: missing, Regex: regex})

			var notFound *DirectoryNotFoundError
			require.True(t, errors.As(err, &notFound), "regex %q: %v", regex, err)
			assert.Equal(t, missing, notFound.Directory)
			assert.Contains(t, err.Error(), missing)
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "file")

		_, err := Resolve(Dynamic{Directory: filepath.Join(dir, "file"), Regex: ".*"})
		var notFound *DirectoryNotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("no file matches", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "readme.txt", "other.bin")

		_, err := Resolve(Dynamic{Directory: dir, Regex: `^tool-\d+`})
		var noMatch *NoFileMatchError
		require.True(t, errors.As(err, &noMatch))
		assert.Equal(t, dir, noMatch.Directory)
		assert.Equal(t, `^tool-\d+`, noMatch.Regex)
		assert.Contains(t, err.Error(), dir)
		assert.Contains(t, err.Error(), `^tool-\d+`)
	})

	t.Run("empty directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Resolve(Dynamic{Directory: dir, Regex: ".*"})
		var noMatch *NoFileMatchError
		assert.True(t, errors.As(err, &noMatch))
	})

	t.Run("first match in lexicographic order", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "tool-2.0.0.exe", "notes.md", "tool-1.9.0.exe", "tool-10.0.0.exe")

		p, err := Resolve(Dynamic{Directory: dir, Regex: `tool-.*\.exe`})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "tool-1.9.0.exe"), p)
	})

	t.Run("relative directory resolves to absolute path", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "tool-1.0")
		chdir(t, dir)

		p, err := Resolve(Dynamic{Directory: ".", Regex: `tool-`})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(p), p)
		assert.Equal(t, "tool-1.0", filepath.Base(p))

		require.NoError(t, os.Mkdir(filepath.Join(dir, "tools"), 0755))
		touch(t, filepath.Join(dir, "tools"), "tool-2.0")

		p, err = Resolve(Dynamic{Directory: "tools", Regex: `tool-`})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(p), p)
		assert.Equal(t, "tool-2.0", filepath.Base(p))
		assert.Equal(t, "tools", filepath.Base(filepath.Dir(p)))
	})

	t.Run("invalid regex", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Resolve(Dynamic{Directory: dir, Regex: "("})
		var invalid *extract.InvalidPatternError
		assert.True(t, errors.As(err, &invalid))
	})

	t.Run("working dir", func(t *testing.T) {
		assert.Equal(t, "/opt/tools", WorkingDir(Dynamic{Directory: "/opt/tools", Regex: "x"}))
		assert.Equal(t, "/opt/tools", WorkingDir(&Dynamic{Directory: "/opt/tools", Regex: "x"}))
	})
}

func TestResolveNil(t *testing.T) {
	_, err := Resolve(nil)
	assert.Error(t, err)
}
