package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pageforge/docprinter/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "docprint",
		Short:         "Render algebraic documents built from the doc package",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version(),
	}
	root.AddCommand(newRenderCmd(), newDemoCmd())
	return root
}

// reportError prints err to stderr and returns it unchanged: a single
// formatted line per failure, no Go stack trace.
func reportError(err error) error {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	return err
}
