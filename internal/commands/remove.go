package commands

import (
	"strings"

	"github.com/ImSingee/go-ex/pp"
	"github.com/spf13/cobra"
)

func RemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>...",
		Aliases: []string{"rm"},
		Short:   "Remove software definitions",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			if err := e.store.Remove(args...); err != nil {
				return err
			}

			pp.Println("Removed", strings.Join(args, ", "))
			return nil
		},
	}
}
