package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ngoconnect-web/config"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the NGO categories and their page slugs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := config.LoadCategories()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VALUE\tSLUG\tNAME\tSUBCATEGORIES")
		for _, c := range cats.All() {
			fmt.Fprintf(w, "%s\t/category/%s\t%s\t%d\n", c.Value, c.Slug, c.Name, len(c.Subcategories))
		}
		return w.Flush()
	},
}
