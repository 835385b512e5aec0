package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"startyparty-news/internal/icon"
	"startyparty-news/internal/logging"
	"startyparty-news/internal/presenter"
	"startyparty-news/internal/slug"

	"github.com/spf13/cobra"
)

var (
	iconOut     string
	iconQuality int
)

// iconCmd resolves a publisher icon the way the list does and saves it as WebP.
var iconCmd = &cobra.Command{
	Use:   "icon <publisher...>",
	Short: "Download a publisher icon (or the fallback) as WebP",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		log, closeLog, err := logging.Setup(cfg.App, false)
		if err != nil {
			return err
		}
		defer closeLog()

		name := strings.Join(args, " ")
		out := iconOut
		if out == "" {
			out = slug.Make(name) + ".webp"
			if out == ".webp" {
				out = "icon.webp"
			}
		}

		loader := icon.NewLoader(cfg.Icons.Fallback, log)
		ic := loader.Load(cmd.Context(), presenter.IconURL(cfg.Icons.BaseURL, name))

		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("create icon dir: %w", err)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create icon file: %w", err)
		}
		defer f.Close()
		if err := icon.EncodeWebP(f, ic.Image, iconQuality); err != nil {
			return err
		}
		src := ic.Source
		if ic.Fallback {
			src = "fallback (" + cfg.Icons.Fallback + ")"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", src, out)
		return nil
	},
}

func init() {
	iconCmd.Flags().StringVarP(&iconOut, "out", "o", "", "output file (default: <slug>.webp)")
	iconCmd.Flags().IntVar(&iconQuality, "quality", 85, "WebP quality (1-100)")
	rootCmd.AddCommand(iconCmd)
}
