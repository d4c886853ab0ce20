// Package commands implements the suc command line.
package commands

import (
	"io"
	"net/http"
	"os"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/aboe026/software-update-checker-sub000/internal/config"
	"github.com/aboe026/software-update-checker-sub000/internal/fetch"
	"github.com/aboe026/software-update-checker-sub000/internal/lib/xlog"
	"github.com/aboe026/software-update-checker-sub000/internal/runner"
	"github.com/aboe026/software-update-checker-sub000/internal/settings"
	"github.com/aboe026/software-update-checker-sub000/internal/software"
	"github.com/aboe026/software-update-checker-sub000/internal/version"
)

const help = `Track the installed and latest versions of your software.

Usage:
  suc add --name <name> (--command <cmd> | --directory <dir> --regex <re>) ...
  suc edit <name> [flags]
  suc remove <name>...
  suc view [--filter <glob>]
`

func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCommand(),
		EditCommand(),
		RemoveCommand(),
		ViewCommand(),
		InstalledCommand(),
		LatestCommand(),
	}
}

func NewRootCommand() *cobra.Command {
	app := &cobra.Command{
		Use:           "suc",
		Long:          help,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.AddCommand(Commands()...)

	app.PersistentFlags().SortFlags = false
	app.PersistentFlags().StringP("root", "R", "", "change command working directory")
	app.PersistentFlags().String(settings.KeyConfig, "", "software definitions file (default is in the user config directory)")
	app.PersistentFlags().Duration(settings.KeyHTTPTimeout, settings.DefaultHTTPTimeout, "timeout of latest version requests")
	app.PersistentFlags().String(settings.KeySelfEntrypoint, "", "entry file to pass when a bundled executable re-invokes itself")
	app.PersistentFlags().Bool(settings.KeyProgress, true, "show live progress while checking")
	app.PersistentFlags().Bool("debug", false, "print additional debug information")
	app.PersistentFlags().BoolP("quiet", "q", false, "quiet mode (hide any output)")

	app.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		if quiet {
			pp.Stdout.ChangeWriter(io.Discard)
			pp.Stderr.ChangeWriter(io.Discard)
			cmd.SetOut(io.Discard)
		}
		xlog.Setup(os.Stderr, debug, quiet)

		if root, _ := cmd.Flags().GetString("root"); root != "" {
			err := os.Chdir(root)
			if err != nil {
				return ee.Wrapf(err, "cannot change working directory to %s", root)
			}
		}

		return nil
	}

	return app
}

type env struct {
	settings *settings.Settings
	store    *config.Store
	resolver *software.Resolver
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	s, err := settings.Load(cmd.Flags(), settings.DefaultFile())
	if err != nil {
		return nil, ee.Wrap(err, "cannot load settings")
	}

	r := runner.New()
	r.SelfEntrypoint = s.SelfEntrypoint

	return &env{
		settings: s,
		store:    config.NewStore(s.ConfigPath),
		resolver: software.NewResolver(r, fetch.New(&http.Client{Timeout: s.HTTPTimeout})),
	}, nil
}
