package commands

import (
	"github.com/ImSingee/go-ex/ee"
	"github.com/spf13/cobra"

	"github.com/aboe026/software-update-checker-sub000/internal/executable"
	"github.com/aboe026/software-update-checker-sub000/internal/software"
)

// definitionFlags are the flags shared by add and edit
type definitionFlags struct {
	name           string
	command        string
	directory      string
	regex          string
	args           string
	shell          string
	installedRegex string
	url            string
	latestRegex    string
}

func (f *definitionFlags) register(cmd *cobra.Command, nameFlag string) {
	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVar(&f.name, nameFlag, "", "name of the software")
	flags.StringVar(&f.command, "command", "", "static command or path of the executable")
	flags.StringVar(&f.directory, "directory", "", "directory to search the executable in")
	flags.StringVar(&f.regex, "regex", "", "pattern selecting the executable file inside --directory")
	flags.StringVar(&f.args, "args", "", "arguments appended to the executable")
	flags.StringVar(&f.shell, "shell", "", "shell used to run the executable instead of the default one")
	flags.StringVar(&f.installedRegex, "installed-regex", "", "pattern whose first group is the installed version")
	flags.StringVar(&f.url, "url", "", "url to fetch the latest version from (git+<remote> lists tags)")
	flags.StringVar(&f.latestRegex, "latest-regex", "", "pattern whose first group is the latest version")
}

func (f *definitionFlags) executable() (executable.Executable, error) {
	static := f.command != ""
	dynamic := f.directory != "" || f.regex != ""

	switch {
	case static && dynamic:
		return nil, ee.New("--command cannot be used together with --directory/--regex")
	case static:
		return executable.Static{Command: f.command}, nil
	case dynamic:
		if f.directory == "" || f.regex == "" {
			return nil, ee.New("--directory and --regex must be used together")
		}
		return executable.Dynamic{Directory: f.directory, Regex: f.regex}, nil
	default:
		return nil, ee.New("either --command or --directory with --regex is required")
	}
}

// apply derives a new definition from base using only the flags set on cmd
func (f *definitionFlags) apply(cmd *cobra.Command, base software.Definition, nameFlag string) (software.Definition, error) {
	changed := cmd.Flags().Changed
	d := base

	if changed(nameFlag) {
		d = d.WithName(f.name)
	}

	switch {
	case changed("command") && (changed("directory") || changed("regex")):
		return d, ee.New("--command cannot be used together with --directory/--regex")
	case changed("command"):
		d = d.WithExecutable(executable.Static{Command: f.command})
	case changed("directory") || changed("regex"):
		dynamic, _ := base.Executable.(executable.Dynamic)
		if changed("directory") {
			dynamic.Directory = f.directory
		}
		if changed("regex") {
			dynamic.Regex = f.regex
		}
		if dynamic.Directory == "" || dynamic.Regex == "" {
			return d, ee.New("--directory and --regex must be used together")
		}
		d = d.WithExecutable(dynamic)
	}

	if changed("args") {
		d = d.WithArgs(f.args)
	}
	if changed("shell") {
		d = d.WithShell(f.shell)
	}
	if changed("installed-regex") {
		d = d.WithInstalledRegex(f.installedRegex)
	}
	if changed("url") {
		d = d.WithURL(f.url)
	}
	if changed("latest-regex") {
		d = d.WithLatestRegex(f.latestRegex)
	}

	return d, d.Validate()
}
