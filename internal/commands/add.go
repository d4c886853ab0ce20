package commands

import (
	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"

	"github.com/aboe026/software-update-checker-sub000/internal/software"
)

type addOptions struct {
	definitionFlags
	verify bool
}

func AddCommand() *cobra.Command {
	o := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a software definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			return o.add(cmd, e)
		},
	}

	o.register(cmd, "name")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "resolve both versions before saving")

	for _, required := range []string{"name", "installed-regex", "url", "latest-regex"} {
		_ = cmd.MarkFlagRequired(required)
	}

	return cmd
}

func (o *addOptions) add(cmd *cobra.Command, e *env) error {
	exe, err := o.executable()
	if err != nil {
		return err
	}

	d, err := software.New(o.name, exe, o.args, o.shell, o.installedRegex, o.url, o.latestRegex)
	if err != nil {
		return err
	}

	if o.verify {
		if err := verify(cmd, e, d); err != nil {
			return err
		}
	}

	if err := e.store.Add(d); err != nil {
		return ee.Wrap(err, "cannot add software")
	}

	pp.Println("Added", d.Name)
	return nil
}

// verify resolves both versions of d and reports them
func verify(cmd *cobra.Command, e *env, d *software.Definition) error {
	report := e.resolver.Check(cmd.Context(), d)

	if report.InstalledErr != nil {
		return ee.Wrap(report.InstalledErr, "cannot resolve installed version")
	}
	if report.LatestErr != nil {
		return ee.Wrap(report.LatestErr, "cannot resolve latest version")
	}

	pp.Println("Installed version:", report.Installed)
	pp.Println("Latest version:", report.Latest)

	return nil
}
