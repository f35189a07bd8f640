package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the available generation targets",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, _ []string) error {
	gen := newOrchestrator(nil)
	registry := gen.Registry()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tCONTENT TYPE\tDEFAULT")
	for _, name := range registry.List() {
		renderer, err := registry.Get(name)
		if err != nil {
			return err
		}
		marker := ""
		if name == appConfig.Renderer {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, renderer.ContentType(), marker)
	}
	return w.Flush()
}
