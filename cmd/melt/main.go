package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mastercactapus/melt/config"
	"github.com/spf13/cobra"
)

var version = "4.0.0"

type flags struct {
	config    string
	extruders int
	tool      string
	seed      int64
	debug     bool
}

func (f *flags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	var err error
	if f.config != "" {
		cfg, err = config.Load(f.config)
		if err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("extruders") {
		cfg.Extruders = f.extruders
	}
	if fl.Changed("tool") {
		cfg.Tool, err = config.ParseToolFilter(f.tool)
		if err != nil {
			return cfg, err
		}
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("debug") {
		cfg.Debug = f.debug
	}

	return cfg, cfg.Validate()
}

func main() {
	log.SetFlags(log.Lshortfile)

	var f flags
	rootCmd := &cobra.Command{
		Use:           "melt",
		Short:         "Multi-extruder layering tool: blends mixing extruder inlets across a sliced print",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Path to a YAML config file.")
	pf.IntVar(&f.extruders, "extruders", 2, "Number of inlets in the mixing nozzle (2-4).")
	pf.StringVar(&f.tool, "tool", "all", "Tool to apply the mix to ('all' or a tool number).")
	pf.Int64Var(&f.seed, "seed", 0, "Seed for random effects (0 picks one).")
	pf.BoolVar(&f.debug, "debug", false, "Annotate lines with the tracked tool, Z and mode.")

	rootCmd.AddCommand(
		newProcessCmd(&f),
		newServeCmd(&f),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "melt", version)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
