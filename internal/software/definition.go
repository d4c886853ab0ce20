// Package software holds the tracked software definitions and resolves their
// installed and latest versions.
package software

import (
	"github.com/ImSingee/go-ex/ee"

	"github.com/aboe026/software-update-checker-sub000/internal/executable"
)

var (
	ErrEmptyName     = ee.New("software name must not be empty")
	ErrNoExecutable  = ee.New("software executable must be set")
	ErrAmbiguousExec = ee.New("software executable must have either a command or a directory and regex, not both")
)

// Definition describes how to find the installed and the latest version of one program.
//
// It is a value: use the With helpers to derive a changed copy.
type Definition struct {
	Name       string
	Shell      string
	Executable executable.Executable
	Args       string

	InstalledRegex string

	URL         string
	LatestRegex string
}

func New(name string, exe executable.Executable, args, shell, installedRegex, url, latestRegex string) (*Definition, error) {
	d := &Definition{
		Name:           name,
		Shell:          shell,
		Executable:     exe,
		Args:           args,
		InstalledRegex: installedRegex,
		URL:            url,
		LatestRegex:    latestRegex,
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks the construction invariants.
//
// Regexes are not compiled here, a bad or group-less pattern is reported when
// the version is resolved.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Executable == nil {
		return ErrNoExecutable
	}
	return nil
}

func (d Definition) WithName(name string) Definition {
	d.Name = name
	return d
}

func (d Definition) WithExecutable(exe executable.Executable) Definition {
	d.Executable = exe
	return d
}

func (d Definition) WithArgs(args string) Definition {
	d.Args = args
	return d
}

func (d Definition) WithShell(shell string) Definition {
	d.Shell = shell
	return d
}

func (d Definition) WithInstalledRegex(regex string) Definition {
	d.InstalledRegex = regex
	return d
}

func (d Definition) WithURL(url string) Definition {
	d.URL = url
	return d
}

func (d Definition) WithLatestRegex(regex string) Definition {
	d.LatestRegex = regex
	return d
}
