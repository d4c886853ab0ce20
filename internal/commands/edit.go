package commands

import (
	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"
)

type editOptions struct {
	definitionFlags
	verify bool
}

func EditCommand() *cobra.Command {
	o := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Change a software definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			return o.edit(cmd, e, args[0])
		},
	}

	o.register(cmd, "rename")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "resolve both versions before saving")

	return cmd
}

func (o *editOptions) edit(cmd *cobra.Command, e *env, name string) error {
	old, err := e.store.Get(name)
	if err != nil {
		return err
	}

	d, err := o.apply(cmd, *old, "rename")
	if err != nil {
		return err
	}

	if o.verify {
		if err := verify(cmd, e, &d); err != nil {
			return err
		}
	}

	if err := e.store.Replace(name, &d); err != nil {
		return ee.Wrapf(err, "cannot save software %s", name)
	}

	pp.Println("Saved", d.Name)
	return nil
}
