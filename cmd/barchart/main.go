// Command barchart renders a bar chart image from command-line values or a
// YAML/JSON chart file.
//
//	barchart render --values 5,250,10,0,256 --width 720 --height 480 -o chart.png
//	barchart render --config chart.yaml --title "Uptime"
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "barchart",
		Short:        "Render bar charts to image files",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ggchart version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "barchart", ggchart.Version)
		},
	}
}
