package cmd

import (
	"fmt"
	"io"
	"os"

	"startyparty-news/internal/logging"
	"startyparty-news/internal/notify"
	"startyparty-news/internal/presenter"
	"startyparty-news/internal/ui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listFormat string

// listCmd runs one load cycle and prints the entries instead of showing the
// interactive list.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the news list once",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFormat != "text" && listFormat != "yaml" {
			return fmt.Errorf("unknown format %q (want text or yaml)", listFormat)
		}
		cfg := GetConfig()
		log, closeLog, err := logging.Setup(cfg.App, false)
		if err != nil {
			return err
		}
		defer closeLog()

		stderr := cmd.ErrOrStderr()
		surface := notify.Func(func(n notify.Notification) {
			fmt.Fprintln(stderr, ui.Toast(n))
		})
		n, closeNotifier := notifierFor(cfg, log, surface)
		defer closeNotifier()

		p := newPresenter(cfg, log, n, nil)
		p.Load(cmd.Context())

		return writeEntries(cmd.OutOrStdout(), p.State(), p.Entries(), listFormat)
	},
}

type listOutput struct {
	State   string            `yaml:"state"`
	Entries []presenter.Entry `yaml:"entries"`
}

func writeEntries(w io.Writer, state presenter.State, entries []presenter.Entry, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listOutput{State: state.String(), Entries: entries}); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := io.WriteString(w, ui.List(entries, ui.TerminalWidth(os.Stdout)))
	return err
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(listCmd)
}
