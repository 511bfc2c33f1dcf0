package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushpakoirala/portfolio-api/internal/admin"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit the site profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := env.client.Profile().Get(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(p.Name + " — " + p.Title))
		fmt.Printf("%s %s\n", labelStyle.Render("Headline:"), p.Headline)
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), p.Email)
		fmt.Printf("%s %s\n", labelStyle.Render("Phone:"), p.Phone)
		fmt.Printf("%s %s\n", labelStyle.Render("Location:"), p.Location)
		fmt.Printf("%s %s\n", labelStyle.Render("LinkedIn:"), p.LinkedIn)
		fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), p.GitHub)
		fmt.Println()
		fmt.Println(p.About)
		return nil
	},
}

var profileEditFlags admin.ProfileForm

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update profile fields",
	Long: `Updates the profile. Only the flags you pass change; everything else
keeps its current value. The update is a full replace server-side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)
		snap := env.ctrl.Snapshot()
		if snap.Profile == nil {
			return fmt.Errorf("profile could not be loaded")
		}

		if err := env.ctrl.OpenEdit(admin.ResourceProfile, ""); err != nil {
			return err
		}

		form := admin.ProfileFormFrom(*snap.Profile)
		applyIfChanged(cmd, map[string]func(){
			"name":     func() { form.Name = profileEditFlags.Name },
			"title":    func() { form.Title = profileEditFlags.Title },
			"headline": func() { form.Headline = profileEditFlags.Headline },
			"about":    func() { form.About = profileEditFlags.About },
			"email":    func() { form.Email = profileEditFlags.Email },
			"phone":    func() { form.Phone = profileEditFlags.Phone },
			"location": func() { form.Location = profileEditFlags.Location },
			"linkedin": func() { form.LinkedIn = profileEditFlags.LinkedIn },
			"github":   func() { form.GitHub = profileEditFlags.GitHub },
			"photo":    func() { form.ProfilePhoto = profileEditFlags.ProfilePhoto },
			"resume":   func() { form.ResumeURL = profileEditFlags.ResumeURL },
		})

		if err := env.ctrl.SaveProfile(ctx, form); err != nil {
			return err
		}
		fmt.Println("Profile updated.")
		return nil
	},
}

// applyIfChanged runs the setter for each flag the user actually passed.
func applyIfChanged(cmd *cobra.Command, setters map[string]func()) {
	for name, set := range setters {
		if cmd.Flags().Changed(name) {
			set()
		}
	}
}

func init() {
	f := profileEditCmd.Flags()
	f.StringVar(&profileEditFlags.Name, "name", "", "display name")
	f.StringVar(&profileEditFlags.Title, "title", "", "professional title")
	f.StringVar(&profileEditFlags.Headline, "headline", "", "short headline")
	f.StringVar(&profileEditFlags.About, "about", "", "about text")
	f.StringVar(&profileEditFlags.Email, "email", "", "contact email")
	f.StringVar(&profileEditFlags.Phone, "phone", "", "contact phone")
	f.StringVar(&profileEditFlags.Location, "location", "", "location")
	f.StringVar(&profileEditFlags.LinkedIn, "linkedin", "", "LinkedIn URL")
	f.StringVar(&profileEditFlags.GitHub, "github", "", "GitHub URL")
	f.StringVar(&profileEditFlags.ProfilePhoto, "photo", "", "profile photo URL")
	f.StringVar(&profileEditFlags.ResumeURL, "resume", "", "resume URL")

	profileCmd.AddCommand(profileShowCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
