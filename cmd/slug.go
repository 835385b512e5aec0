package cmd

import (
	"fmt"
	"strings"

	"startyparty-news/internal/presenter"
	"startyparty-news/internal/slug"

	"github.com/spf13/cobra"
)

var slugCmd = &cobra.Command{
	Use:   "slug <publisher...>",
	Short: "Print the slug and icon URL for a publisher name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		name := strings.Join(args, " ")
		fmt.Fprintf(cmd.OutOrStdout(), "slug: %s\n", slug.Make(name))
		fmt.Fprintf(cmd.OutOrStdout(), "icon: %s\n", presenter.IconURL(cfg.Icons.BaseURL, name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
