package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aboe026/software-update-checker-sub000/internal/software"
)

func InstalledCommand() *cobra.Command {
	return resolveCommand("installed <name>", "Print the installed version of a software", (*software.Resolver).ResolveInstalledVersion)
}

func LatestCommand() *cobra.Command {
	return resolveCommand("latest <name>", "Print the latest version of a software", (*software.Resolver).ResolveLatestVersion)
}

func resolveCommand(use, short string, resolve func(*software.Resolver, context.Context, *software.Definition) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			d, err := e.store.Get(args[0])
			if err != nil {
				return err
			}

			v, err := resolve(e.resolver, cmd.Context(), d)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
