package cmd

import (
	"os/signal"
	"syscall"

	"startyparty-news/internal/browser"
	"startyparty-news/internal/icon"
	"startyparty-news/internal/logging"
	"startyparty-news/internal/notify"
	"startyparty-news/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newsCmd shows the interactive news list.
var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Show the news list and open articles in the browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		log, closeLog, err := logging.Setup(cfg.App, true)
		if err != nil {
			return err
		}
		defer closeLog()

		toasts := notify.NewChan(16)
		toasts.Logger = log
		n, closeNotifier := notifierFor(cfg, log, toasts)
		defer closeNotifier()

		p := newPresenter(cfg, log, n, browser.System{})

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		model := ui.New(ctx, p, toasts.C).WithIconLoader(icon.NewLoader(cfg.Icons.Fallback, log))
		prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := prog.Run(); err != nil && ctx.Err() == nil {
			return err
		}
		log.Info("news: closed", "state", p.State().String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newsCmd)
}
