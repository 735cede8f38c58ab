package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mastercactapus/melt/config"
	"github.com/mastercactapus/melt/gcode"
	"github.com/mastercactapus/melt/melt"
	"github.com/mastercactapus/melt/preview"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newProcessCmd(f *flags) *cobra.Command {
	var (
		output string
		report bool
	)
	cmd := &cobra.Command{
		Use:   "process <file.gcode|->",
		Short: "Rewrite a sliced G-code file with mix commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			return runProcess(cfg, args[0], output, report, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file ('-' for stdout).")
	cmd.Flags().BoolVar(&report, "report", false, "List every inserted mix command on stderr.")
	return cmd
}

func runProcess(cfg config.Config, input, output string, report bool, reportTo io.Writer) error {
	opt, err := cfg.Options()
	if err != nil {
		return err
	}
	if report {
		pal, err := preview.ParsePalette(cfg.Colors)
		if err != nil {
			return err
		}
		opt.Observer = func(in melt.Insertion) {
			fmt.Fprintf(reportTo, "layer %d tool %d z %g: %s %s\n", in.Layer, in.Tool, in.Z, in.Command, pal.Hex(in.Mix))
		}
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		fd, err := os.Open(input)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer fd.Close()
		r = fd
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		fd, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer fd.Close()
		w = fd
	}

	return rewrite(opt, r, w)
}

// rewrite streams a whole print from r to w.
func rewrite(opt melt.Options, r io.Reader, w io.Writer) error {
	rw, err := melt.New(melt.Config{Options: opt, Reader: gcode.NewParser(r)})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, gcode.NewBuffer(rw))
	return errors.Wrap(err, "rewrite")
}
