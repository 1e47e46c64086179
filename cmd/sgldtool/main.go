// Command sgldtool inspects, lints and generates .sgld level files.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sgldtool",
		Short:        "Work with speedgame level files",
		SilenceUsage: true,
	}
	root.AddCommand(newInfoCmd(), newCheckCmd(), newGenCmd(), newListCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
