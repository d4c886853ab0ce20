package shells

import (
	"os"
	"runtime"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/google/shlex"
)

func Quote(arg string) string {
	return shellescape.Quote(arg)
}

func Join(cmdAndArgs []string) string {
	return shellescape.QuoteCommand(cmdAndArgs)
}

func Split(cmd string) ([]string, error) {
	return shlex.Split(cmd)
}

// Default returns the shell used when no override is configured
func Default() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("ComSpec"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}

	return "/bin/sh"
}

// Argv builds the argv that makes shell run line.
//
// shell may carry its own flags (e.g. "bash -l"), it is split the way a POSIX
// shell would unless it names an existing file. An empty shell means Default().
func Argv(shell string, line string) ([]string, error) {
	var argv []string
	if shell == "" {
		argv = []string{Default()}
	} else if isFile(shell) {
		argv = []string{shell}
	} else {
		a, err := Split(shell)
		if err != nil {
			return nil, err
		}
		if len(a) == 0 {
			argv = []string{Default()}
		} else {
			argv = a
		}
	}

	argv = append(argv, commandFlags(argv[0])...)
	argv = append(argv, line)

	return argv, nil
}

// QuoteProgram quotes path so that shell (as accepted by Argv) runs it as a
// single program word. Paths without special characters are returned as is.
func QuoteProgram(shell string, path string) string {
	switch family(program(shell)) {
	case "cmd":
		if !strings.ContainsAny(path, " \t&()[]{}^=;!'+,`~") {
			return path
		}
		return `"` + path + `"`
	case "powershell", "pwsh":
		if !strings.ContainsAny(path, " \t&()[]{}@$;,'\"`#|<>") {
			return path
		}
		return "& '" + strings.ReplaceAll(path, "'", "''") + "'"
	default:
		return Quote(path)
	}
}

// program is the executable part of a shell setting
func program(shell string) string {
	switch {
	case shell == "":
		return Default()
	case isFile(shell):
		return shell
	}

	a, err := Split(shell)
	if err != nil || len(a) == 0 {
		return Default()
	}
	return a[0]
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// family is the lowercased base name of shell without .exe
func family(shell string) string {
	name := shell
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(strings.ToLower(name), ".exe")
}

func commandFlags(shell string) []string {
	switch family(shell) {
	case "cmd":
		return []string{"/d", "/s", "/c"}
	case "powershell", "pwsh":
		return []string{"-Command"}
	default:
		return []string{"-c"}
	}
}
