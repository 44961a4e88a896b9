// Command cfgtool inspects and edits hierarchical configuration files from
// the shell: read and write single tag values, list sections, merge one
// file into another, and convert to TOML or YAML for other tooling.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vrkit/configfile"
)

var (
	logger   = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	fileName string
)

func main() {
	root := &cobra.Command{
		Use:           "cfgtool",
		Short:         "Inspect and edit hierarchical configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&fileName, "file", "f", "", "configuration file to operate on")

	root.AddCommand(getCmd(), setCmd(), listCmd(), mergeCmd(), convertCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func openConfig() (*configfile.ConfigFile, error) {
	if fileName == "" {
		return nil, fmt.Errorf("no configuration file given (use --file)")
	}
	return configfile.Open(fileName)
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <tag-path>",
		Short: "Print the value stored under a tag path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig()
			if err != nil {
				return err
			}
			value, err := cfg.RootSection().RetrieveTagValue(args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <tag-path> <value>",
		Short: "Store a value under a tag path and save the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig()
			if err != nil {
				return err
			}
			cfg.RootSection().StoreTagValue(args[0], args[1])
			if err := cfg.Save(); err != nil {
				return err
			}
			logger.Info("saved", "file", cfg.FileName(), "tag", args[0])
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [section-path]",
		Short: "List the subsections and tags of a section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := cfg.SetCurrentSection(args[0]); err != nil {
					return err
				}
			}
			return cfg.List(cmd.OutOrStdout())
		},
	}
}

func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <source-file>...",
		Short: "Merge one or more files into the configuration and save it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig()
			if err != nil {
				return err
			}
			for _, source := range args {
				if err := cfg.Merge(source); err != nil {
					return err
				}
				logger.Info("merged", "source", source)
			}
			return cfg.Save()
		},
	}
}

func convertCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the configuration to stdout as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig()
			if err != nil {
				return err
			}
			switch format {
			case "toml":
				return configfile.ExportTOML(cmd.OutOrStdout(), cfg.RootSection())
			case "yaml":
				return configfile.ExportYAML(cmd.OutOrStdout(), cfg.RootSection())
			case "text":
				return configfile.Write(cmd.OutOrStdout(), cfg.RootSection())
			default:
				return fmt.Errorf("unknown format %q (want toml, yaml, or text)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml, yaml, or text")
	return cmd
}
