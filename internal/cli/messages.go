package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Triage contact messages",
}

var messagesStatus string

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contact messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		snap := env.ctrl.RefreshAll(ctx)

		header := "Messages"
		if unread := snap.UnreadCount(); unread > 0 {
			header += "  " + badgeStyle.Render(fmt.Sprintf("%d unread", unread))
		}
		fmt.Println(titleStyle.Render(header))

		for _, m := range snap.Messages {
			if messagesStatus != "" && m.Status != messagesStatus {
				continue
			}
			marker := " "
			if m.Status == "unread" {
				marker = "*"
			}
			fmt.Printf("%s %s  %s <%s>  %s\n", marker, m.ID, labelStyle.Render(m.Name), m.Email, m.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Println("    " + m.Body)
		}
		return nil
	},
}

var messagesReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Toggle a message between read and unread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)
		if err := env.ctrl.ToggleMessageRead(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Message status toggled.")
		return nil
	},
}

var messagesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteMessage(cmd.Context(), args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Message deleted.")
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show a summary of all content",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		snap := env.ctrl.RefreshAll(cmd.Context())

		fmt.Println(titleStyle.Render("Portfolio Dashboard"))
		if snap.Profile != nil {
			fmt.Printf("%s %s — %s\n", labelStyle.Render("Profile:"), snap.Profile.Name, snap.Profile.Title)
		}
		fmt.Printf("%s %d\n", labelStyle.Render("Skills:"), len(snap.Skills))

		visible := 0
		for _, p := range snap.Projects {
			if p.Visible {
				visible++
			}
		}
		fmt.Printf("%s %d (%d visible)\n", labelStyle.Render("Projects:"), len(snap.Projects), visible)
		fmt.Printf("%s %d\n", labelStyle.Render("Experience:"), len(snap.Experience))
		fmt.Printf("%s %d\n", labelStyle.Render("Education:"), len(snap.Education))
		fmt.Printf("%s %d\n", labelStyle.Render("Certifications:"), len(snap.Certifications))

		msgLine := fmt.Sprintf("%d", len(snap.Messages))
		if unread := snap.UnreadCount(); unread > 0 {
			msgLine += "  " + badgeStyle.Render(fmt.Sprintf("%d unread", unread))
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Messages:"), msgLine)
		return nil
	},
}

func init() {
	messagesListCmd.Flags().StringVar(&messagesStatus, "status", "", "filter by status (read or unread)")
	messagesRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")

	messagesCmd.AddCommand(messagesListCmd, messagesReadCmd, messagesRmCmd)
	rootCmd.AddCommand(messagesCmd, dashboardCmd)
}
