package cli

import (
	"os"
	"strings"

	"github.com/deepnoodle-ai/veo/internal/tablewriter"
	"github.com/deepnoodle-ai/veo/media"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the available video generation models",
	RunE: func(cmd *cobra.Command, args []string) error {
		headerStyle.Println("Available models:")

		w := tablewriter.NewWriter(os.Stdout)
		w.Header([]string{"Alias", "Model", "Description"})
		for _, model := range media.KnownModels() {
			aliases := strings.Join(model.Aliases, ", ")
			description := model.Description
			for _, alias := range model.Aliases {
				if alias == media.DefaultModelAlias {
					description += " (default)"
					break
				}
			}
			w.Append([]string{aliases, model.ID, description})
		}
		w.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
