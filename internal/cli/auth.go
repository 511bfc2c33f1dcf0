package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		user, err := env.store.Login(cmd.Context(), env.client.Auth(), args[0], password)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Logged in as " + user.Username))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := env.store.Logout(cmd.Context(), env.client.Auth()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := env.store.User()
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Username:"), user.Username)
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), user.Email)
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the admin password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		current, err := promptSecret("Current password: ")
		if err != nil {
			return err
		}
		next, err := promptSecret("New password: ")
		if err != nil {
			return err
		}

		if err := env.store.ChangePassword(cmd.Context(), env.client.Auth(), current, next); err != nil {
			return err
		}
		fmt.Println("Password changed.")
		return nil
	},
}

var usernameCmd = &cobra.Command{
	Use:   "username <new-username>",
	Short: "Change the admin username",
	Long: `Changes the admin username. The server issues a fresh token bound to
the new name and the stored session is replaced with it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		password, err := promptSecret("Current password: ")
		if err != nil {
			return err
		}

		user, err := env.store.ChangeUsername(cmd.Context(), env.client.Auth(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Println(titleStyle.Render("Username is now " + user.Username))
		return nil
	},
}

var emailCmd = &cobra.Command{
	Use:   "email <new-email>",
	Short: "Change the admin contact email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := env.store.ChangeEmail(cmd.Context(), env.client.Auth(), args[0]); err != nil {
			return err
		}
		fmt.Println("Email updated.")
		return nil
	},
}

func promptSecret(label string) (string, error) {
	fmt.Print(labelStyle.Render(label))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, passwdCmd, usernameCmd, emailCmd)
}
