package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/df07/go-weekend-raytracer/pkg/log"
)

var logger = log.New("weekend")

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	var verbose, veryVerbose bool

	rootCmd := &cobra.Command{
		Use:   "weekend",
		Short: "Offline path tracer for sphere scenes",
		Long: `weekend renders scenes made of spheres with diffuse, metal and glass materials.
Scenes are either built in or described in YAML files. Images are written as
PPM, PNG or BMP.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case veryVerbose:
				log.SetLevel(log.Debug)
			case verbose:
				log.SetLevel(log.Info)
			default:
				log.SetLevel(log.Notice)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log render progress summaries")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "log scanline progress and BVH statistics")

	rootCmd.AddCommand(newRenderCmd(), newScenesCmd())
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
