package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func newScenesCmd() *cobra.Command {
	var dir string

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "List built-in scenes and scene files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := scene.ListAllScenes(dir)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeader([]string{"ID", "Name", "Type", "Description"})
			for _, info := range scenes {
				table.Append([]string{info.ID, info.Name, info.Type, info.Description})
			}
			table.Render()
			return nil
		},
	}

	scenesCmd.Flags().StringVar(&dir, "dir", "scenes", "directory searched for *.yaml scene files")
	return scenesCmd
}
