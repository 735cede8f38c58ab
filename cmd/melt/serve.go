package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

func newServeCmd(f *flags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rewrite API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load(cmd)
			if err != nil {
				return err
			}
			a, err := newAPI(cfg)
			if err != nil {
				return err
			}
			log.Printf("listening on %s", addr)
			return http.ListenAndServe(addr, a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9091", "Address to bind the server to.")
	return cmd
}
