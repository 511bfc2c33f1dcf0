package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushpakoirala/portfolio-api/internal/admin"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectsListVisible bool

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter *bool
		if cmd.Flags().Changed("visible") {
			filter = &projectsListVisible
		}

		projects, err := env.client.Projects().List(cmd.Context(), filter)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Projects"))
		for _, p := range projects {
			marker := " "
			if !p.Visible {
				marker = badgeStyle.Render("hidden")
			}
			fmt.Printf("%s  %s  %s  [%s] %s\n", p.ID, labelStyle.Render(p.Title), p.Status, joinPreview(p.Technologies), marker)
		}
		return nil
	},
}

var projectForm admin.ProjectForm

var projectsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := env.ctrl.OpenCreate(admin.ResourceProjects); err != nil {
			return err
		}

		form := admin.NewProjectForm()
		applyProjectFlags(cmd, &form)

		if err := env.ctrl.SaveProject(ctx, form); err != nil {
			return err
		}
		fmt.Println("Project created.")
		return nil
	},
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		current, err := env.client.Projects().Get(ctx, args[0])
		if err != nil {
			return err
		}

		env.ctrl.RefreshAll(ctx)
		if err := env.ctrl.OpenEdit(admin.ResourceProjects, args[0]); err != nil {
			return err
		}

		form := admin.ProjectFormFrom(*current)
		applyProjectFlags(cmd, &form)

		if err := env.ctrl.SaveProject(ctx, form); err != nil {
			return err
		}
		fmt.Println("Project updated.")
		return nil
	},
}

var projectsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)
		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteProject(ctx, args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Project deleted.")
		return nil
	},
}

var projectsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a project's public visibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)
		if err := env.ctrl.ToggleProjectVisibility(ctx, args[0]); err != nil {
			return err
		}

		for _, p := range env.ctrl.Snapshot().Projects {
			if p.ID == args[0] {
				fmt.Printf("Project %q is now visible=%t\n", p.Title, p.Visible)
				return nil
			}
		}
		return nil
	},
}

func applyProjectFlags(cmd *cobra.Command, form *admin.ProjectForm) {
	applyIfChanged(cmd, map[string]func(){
		"title":        func() { form.Title = projectForm.Title },
		"problem":      func() { form.ProblemStatement = projectForm.ProblemStatement },
		"description":  func() { form.Description = projectForm.Description },
		"technologies": func() { form.Technologies = projectForm.Technologies },
		"role":         func() { form.Role = projectForm.Role },
		"outcome":      func() { form.Outcome = projectForm.Outcome },
		"status":       func() { form.Status = projectForm.Status },
		"visible":      func() { form.Visible = projectForm.Visible },
		"order":        func() { form.Order = projectForm.Order },
		"image":        func() { form.ImageURL = projectForm.ImageURL },
		"url":          func() { form.ProjectURL = projectForm.ProjectURL },
		"repo":         func() { form.GitHubURL = projectForm.GitHubURL },
	})
}

func addProjectFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&projectForm.Title, "title", "", "project title")
	f.StringVar(&projectForm.ProblemStatement, "problem", "", "problem statement")
	f.StringVar(&projectForm.Description, "description", "", "description")
	f.StringVar(&projectForm.Technologies, "technologies", "", "comma-separated technology list")
	f.StringVar(&projectForm.Role, "role", "", "your role")
	f.StringVar(&projectForm.Outcome, "outcome", "", "outcome")
	f.StringVar(&projectForm.Status, "status", "Completed", "Completed, In Progress or Planned")
	f.BoolVar(&projectForm.Visible, "visible", true, "show on the public page")
	f.IntVar(&projectForm.Order, "order", 0, "display order")
	f.StringVar(&projectForm.ImageURL, "image", "", "image URL")
	f.StringVar(&projectForm.ProjectURL, "url", "", "live project URL")
	f.StringVar(&projectForm.GitHubURL, "repo", "", "repository URL")
}

func joinPreview(items []string) string {
	const max = 3
	if len(items) <= max {
		return admin.JoinComma(items)
	}
	return admin.JoinComma(items[:max]) + ", ..."
}

func init() {
	projectsListCmd.Flags().BoolVar(&projectsListVisible, "visible", true, "filter by visibility")
	addProjectFlags(projectsAddCmd)
	addProjectFlags(projectsEditCmd)
	projectsRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")

	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsEditCmd, projectsRmCmd, projectsToggleCmd)
	rootCmd.AddCommand(projectsCmd)
}
