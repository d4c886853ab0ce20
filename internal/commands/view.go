package commands

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aboe026/software-update-checker-sub000/internal/lib/glob"
	"github.com/aboe026/software-update-checker-sub000/internal/lib/tl"
	"github.com/aboe026/software-update-checker-sub000/internal/software"
)

type viewOptions struct {
	filter string
	plain  bool
}

func ViewCommand() *cobra.Command {
	o := &viewOptions{}

	cmd := &cobra.Command{
		Use:     "view",
		Aliases: []string{"check", "ls"},
		Short:   "Check every software for updates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			return o.view(cmd, e)
		},
	}

	cmd.Flags().StringVarP(&o.filter, "filter", "f", "", "only check software whose name matches the glob")
	cmd.Flags().BoolVar(&o.plain, "plain", false, "no live progress, print the report only")

	return cmd
}

func (o *viewOptions) view(cmd *cobra.Command, e *env) error {
	filter, err := glob.NewFilter(o.filter)
	if err != nil {
		return ee.Wrapf(err, "invalid filter %s", o.filter)
	}

	definitions, err := e.store.Load()
	if err != nil {
		return err
	}
	definitions = filterDefinitions(definitions, filter)

	if len(definitions) == 0 {
		pp.Println("No software to check, add one with `suc add`")
		return nil
	}

	reports := make([]*software.Report, len(definitions))
	tasks := make([]*tl.Task, len(definitions))
	for i, d := range definitions {
		i, d := i, d
		tasks[i] = tl.NewTask(d.Name, func(callback tl.TaskCallback) error {
			log := slog.With("check", uuid.NewString(), "name", d.Name)
			log.Debug("Check software")

			report := e.resolver.Check(cmd.Context(), d)
			reports[i] = report

			log.Debug("Checked software", "installed", report.Installed, "latest", report.Latest, "failed", report.Failed())

			callback.Detail(summary(report))
			if report.Failed() {
				return ee.New("check failed")
			}
			return nil
		})
	}

	runner := tl.New(tasks)
	if e.settings.Progress && !o.plain {
		if _, err := runner.Run(); err != nil {
			return err
		}
	} else {
		runner.RunPlain()
	}

	failed := writeReport(cmd.OutOrStdout(), reports)
	if failed != 0 {
		pp.ERedPrintln(fmt.Sprintf("%d of %d checks failed", failed, len(reports)))
		return ee.Phantom
	}

	return nil
}

func filterDefinitions(definitions []*software.Definition, filter *glob.Filter) []*software.Definition {
	matched := make([]*software.Definition, 0, len(definitions))
	for _, d := range definitions {
		if filter.Match(d.Name) {
			matched = append(matched, d)
		}
	}
	return matched
}

func summary(r *software.Report) string {
	switch {
	case r.Failed():
		return ""
	case r.UpdateAvailable():
		return r.Installed + " -> " + r.Latest
	default:
		return r.Installed
	}
}

// writeReport prints one row per report followed by the errors, it returns the
// number of failed reports
func writeReport(w io.Writer, reports []*software.Report) int {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tINSTALLED\tLATEST\tUPDATE")

	var failures []*software.Report
	for _, r := range reports {
		if r == nil {
			continue
		}

		update := "no"
		if r.UpdateAvailable() {
			update = "yes"
		}
		if r.Failed() {
			update = "?"
			failures = append(failures, r)
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Definition.Name, orError(r.Installed, r.InstalledErr), orError(r.Latest, r.LatestErr), update)
	}
	_ = tw.Flush()

	for _, r := range failures {
		_, _ = fmt.Fprintln(w)
		if r.InstalledErr != nil {
			_, _ = fmt.Fprintf(w, "%s: cannot resolve installed version: %v\n", r.Definition.Name, r.InstalledErr)
		}
		if r.LatestErr != nil {
			_, _ = fmt.Fprintf(w, "%s: cannot resolve latest version: %v\n", r.Definition.Name, r.LatestErr)
		}
	}

	return len(failures)
}

func orError(v string, err error) string {
	if err != nil {
		return "error"
	}
	return v
}
