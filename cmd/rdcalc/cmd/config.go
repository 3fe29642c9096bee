package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/rd-calculator/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage plan configuration files",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write an example configuration containing the built-in presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			parser := config.NewInputParser()
			if err := config.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}
			fmt.Fprintf(out(cmd), "Example configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a configuration file and list the plans it defines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "%s: %d plan(s) OK\n", args[0], len(cfg.Plans))
			for _, pc := range cfg.Plans {
				fmt.Fprintf(out(cmd), "  - %s\n", pc.Name)
			}
			return nil
		},
	}

	configCmd.AddCommand(initCmd, validateCmd)
	return configCmd
}
