// Package cli is the adminctl terminal front-end: content management for
// the portfolio from the shell, driven by the same controller the
// dashboard uses.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pushpakoirala/portfolio-api/internal/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
	"github.com/pushpakoirala/portfolio-api/pkg/portfolio"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("11")).
			Padding(0, 1)
)

var apiURL string

// app holds the wired client stack for the duration of one invocation.
type app struct {
	store  *admin.SessionStore
	client *portfolio.Client
	ctrl   *admin.Controller
}

var env *app

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Manage portfolio content from the terminal",
	Long: `adminctl manages the portfolio site's content: profile, skills,
projects, experience, education, certifications and contact messages.
Log in once; the session persists across invocations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := admin.DefaultSessionPath()
		if err != nil {
			return err
		}

		log := logger.NewNop()
		store, err := admin.NewSessionStore(path, log)
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}

		client := portfolio.New(apiURL, store)
		env = &app{
			store:  store,
			client: client,
			ctrl:   admin.NewController(client, log),
		}
		return nil
	},
}

func init() {
	defaultURL := os.Getenv("PORTFOLIO_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8000"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "base URL of the portfolio API")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

// requireSession fails fast before making a request that would 401.
func requireSession() error {
	if !env.store.Authenticated() {
		return fmt.Errorf("not logged in, run 'adminctl login <username>' first")
	}
	return nil
}
