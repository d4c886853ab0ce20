package executable

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aboe026/software-update-checker-sub000/internal/extract"
)

type DirectoryNotFoundError struct {
	Directory string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory %q does not exist", e.Directory)
}

type NoFileMatchError struct {
	Directory string
	Regex     string
}

func (e *NoFileMatchError) Error() string {
	return fmt.Sprintf("no file in directory %q matches pattern %q", e.Directory, e.Regex)
}

// Resolve turns exe into a concrete command string.
//
// For Dynamic executables the directory entries are scanned in lexicographic
// order of their names and the first match wins, the result is an absolute path.
func Resolve(exe Executable) (string, error) {
	switch e := exe.(type) {
	case Static:
		return e.Command, nil
	case *Static:
		return e.Command, nil
	case Dynamic:
		return resolveDynamic(e)
	case *Dynamic:
		return resolveDynamic(*e)
	case nil:
		return "", errors.New("no executable configured")
	default:
		panic(fmt.Sprintf("unknown executable type %T", exe))
	}
}

func resolveDynamic(d Dynamic) (string, error) {
	info, err := os.Stat(d.Directory)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &DirectoryNotFoundError{Directory: d.Directory}
		}
		return "", err
	}
	if !info.IsDir() {
		return "", &DirectoryNotFoundError{Directory: d.Directory}
	}

	re, err := extract.Compile(d.Regex)
	if err != nil {
		return "", err
	}

	// the command runs inside the directory, a relative result would be applied twice
	dir, err := filepath.Abs(d.Directory)
	if err != nil {
		return "", err
	}

	// os.ReadDir sorts by filename
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if re.MatchString(entry.Name()) {
			p := filepath.Join(dir, entry.Name())
			slog.Debug("Resolved dynamic executable", "directory", d.Directory, "regex", d.Regex, "path", p)
			return p, nil
		}
	}

	return "", &NoFileMatchError{Directory: d.Directory, Regex: d.Regex}
}
