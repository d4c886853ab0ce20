// Package executable describes how the program of a software definition is found.
//
// An Executable is either Static (a fixed command or path) or Dynamic (a file
// picked from a directory by regex, for binaries whose file name embeds a version).
package executable

// Executable is implemented only by Static and Dynamic.
type Executable interface {
	isExecutable()

	// String is a short human description used in listings and logs
	String() string
}

type Static struct {
	Command string
}

type Dynamic struct {
	Directory string
	Regex     string
}

func (Static) isExecutable()  {}
func (Dynamic) isExecutable() {}

func (s Static) String() string {
	return s.Command
}

func (d Dynamic) String() string {
	return d.Directory + " (" + d.Regex + ")"
}

// WorkingDir returns the directory the resolved command should run in.
//
// Dynamic executables run inside their directory, static ones inherit the
// current working directory (empty result).
func WorkingDir(exe Executable) string {
	switch e := exe.(type) {
	case Dynamic:
		return e.Directory
	case *Dynamic:
		return e.Directory
	default:
		return ""
	}
}
