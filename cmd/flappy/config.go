package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagDumpEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate game configuration",
	Long: `Inspect and validate game configuration.

Configuration is searched in this order:
  1. --config <path>
  2. ~/.arcade/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Keys missing from a file keep their default values.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the default configuration as YAML",
	Long: `Print the default configuration as YAML. With --effective, print
the configuration that would actually be used, after the search order and
--config are applied.

Examples:
  flappy config dump > ~/.arcade/configs/flappy.yaml
  flappy config dump --effective --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDumpEffective, "effective", false, "Print the loaded configuration instead of the defaults")

	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigDump(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagDumpEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, src, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", src)
	_, err = out.Write(data)
	return err
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}
