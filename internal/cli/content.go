package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pushpakoirala/portfolio-api/internal/admin"
)

// Skills, experience, education and certifications share the same
// list/add/edit/rm shape.

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skills",
}

var skillForm admin.SkillForm

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, err := env.client.Skills().List(cmd.Context())
		if err != nil {
			return err
		}

		byCategory := map[string][]string{}
		var categories []string
		for _, s := range skills {
			if _, seen := byCategory[s.Category]; !seen {
				categories = append(categories, s.Category)
			}
			byCategory[s.Category] = append(byCategory[s.Category], s.Name+"  ("+s.ID+")")
		}

		for _, cat := range categories {
			fmt.Println(titleStyle.Render(cat))
			for _, line := range byCategory[cat] {
				fmt.Println("  " + line)
			}
		}
		return nil
	},
}

var skillsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := env.ctrl.OpenCreate(admin.ResourceSkills); err != nil {
			return err
		}
		if err := env.ctrl.SaveSkill(cmd.Context(), skillForm); err != nil {
			return err
		}
		fmt.Println("Skill created.")
		return nil
	},
}

var skillsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)

		var form admin.SkillForm
		found := false
		for _, s := range env.ctrl.Snapshot().Skills {
			if s.ID == args[0] {
				form = admin.SkillFormFrom(s)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown skill %q", args[0])
		}

		if err := env.ctrl.OpenEdit(admin.ResourceSkills, args[0]); err != nil {
			return err
		}
		applyIfChanged(cmd, map[string]func(){
			"name":     func() { form.Name = skillForm.Name },
			"category": func() { form.Category = skillForm.Category },
			"order":    func() { form.Order = skillForm.Order },
		})
		if err := env.ctrl.SaveSkill(ctx, form); err != nil {
			return err
		}
		fmt.Println("Skill updated.")
		return nil
	},
}

var skillsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteSkill(cmd.Context(), args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Skill deleted.")
		return nil
	},
}

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage work experience",
}

var experienceForm admin.ExperienceForm

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experience entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := env.client.Experience().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s at %s  (%s)\n", e.ID, labelStyle.Render(e.Title), e.Company, e.Period)
			for _, r := range e.Responsibilities {
				fmt.Println("    - " + r)
			}
		}
		return nil
	},
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an experience entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := env.ctrl.OpenCreate(admin.ResourceExperience); err != nil {
			return err
		}
		if err := env.ctrl.SaveExperience(cmd.Context(), experienceForm); err != nil {
			return err
		}
		fmt.Println("Experience created.")
		return nil
	},
}

var experienceEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)

		var form admin.ExperienceForm
		found := false
		for _, e := range env.ctrl.Snapshot().Experience {
			if e.ID == args[0] {
				form = admin.ExperienceFormFrom(e)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown experience %q", args[0])
		}

		if err := env.ctrl.OpenEdit(admin.ResourceExperience, args[0]); err != nil {
			return err
		}
		applyIfChanged(cmd, map[string]func(){
			"title":            func() { form.Title = experienceForm.Title },
			"company":          func() { form.Company = experienceForm.Company },
			"location":         func() { form.Location = experienceForm.Location },
			"period":           func() { form.Period = experienceForm.Period },
			"responsibilities": func() { form.Responsibilities = experienceForm.Responsibilities },
			"order":            func() { form.Order = experienceForm.Order },
		})
		if err := env.ctrl.SaveExperience(ctx, form); err != nil {
			return err
		}
		fmt.Println("Experience updated.")
		return nil
	},
}

var experienceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an experience entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteExperience(cmd.Context(), args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Experience deleted.")
		return nil
	},
}

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage education entries",
}

var educationForm admin.EducationForm

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List education entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := env.client.Education().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s, %s  (%s)\n", e.ID, labelStyle.Render(e.Degree), e.Institution, e.Period)
		}
		return nil
	},
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an education entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := env.ctrl.OpenCreate(admin.ResourceEducation); err != nil {
			return err
		}
		if err := env.ctrl.SaveEducation(cmd.Context(), educationForm); err != nil {
			return err
		}
		fmt.Println("Education created.")
		return nil
	},
}

var educationEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)

		var form admin.EducationForm
		found := false
		for _, e := range env.ctrl.Snapshot().Education {
			if e.ID == args[0] {
				form = admin.EducationFormFrom(e)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown education %q", args[0])
		}

		if err := env.ctrl.OpenEdit(admin.ResourceEducation, args[0]); err != nil {
			return err
		}
		applyIfChanged(cmd, map[string]func(){
			"degree":      func() { form.Degree = educationForm.Degree },
			"institution": func() { form.Institution = educationForm.Institution },
			"field":       func() { form.FieldOfStudy = educationForm.FieldOfStudy },
			"location":    func() { form.Location = educationForm.Location },
			"period":      func() { form.Period = educationForm.Period },
			"description": func() { form.Description = educationForm.Description },
			"highlights":  func() { form.Highlights = educationForm.Highlights },
			"order":       func() { form.Order = educationForm.Order },
		})
		if err := env.ctrl.SaveEducation(ctx, form); err != nil {
			return err
		}
		fmt.Println("Education updated.")
		return nil
	},
}

var educationRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteEducation(cmd.Context(), args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Education deleted.")
		return nil
	},
}

var certsCmd = &cobra.Command{
	Use:   "certs",
	Short: "Manage certifications",
}

var certForm admin.CertificationForm

var certsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		certs, err := env.client.Certifications().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range certs {
			fmt.Printf("%s  %s — %s (%s)\n", c.ID, labelStyle.Render(c.Name), c.IssuingOrganization, c.Year)
		}
		return nil
	},
}

var certsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a certification",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := env.ctrl.OpenCreate(admin.ResourceCertifications); err != nil {
			return err
		}
		if err := env.ctrl.SaveCertification(cmd.Context(), certForm); err != nil {
			return err
		}
		fmt.Println("Certification created.")
		return nil
	},
}

var certsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		ctx := cmd.Context()
		env.ctrl.RefreshAll(ctx)

		var form admin.CertificationForm
		found := false
		for _, c := range env.ctrl.Snapshot().Certifications {
			if c.ID == args[0] {
				form = admin.CertificationFormFrom(c)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown certification %q", args[0])
		}

		if err := env.ctrl.OpenEdit(admin.ResourceCertifications, args[0]); err != nil {
			return err
		}
		applyIfChanged(cmd, map[string]func(){
			"name":  func() { form.Name = certForm.Name },
			"org":   func() { form.IssuingOrganization = certForm.IssuingOrganization },
			"year":  func() { form.Year = certForm.Year },
			"url":   func() { form.CertificateURL = certForm.CertificateURL },
			"order": func() { form.Order = certForm.Order },
		})
		if err := env.ctrl.SaveCertification(ctx, form); err != nil {
			return err
		}
		fmt.Println("Certification updated.")
		return nil
	},
}

var certsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		confirmed, _ := cmd.Flags().GetBool("yes")
		if err := env.ctrl.DeleteCertification(cmd.Context(), args[0], confirmed); err != nil {
			return err
		}
		fmt.Println("Certification deleted.")
		return nil
	},
}

func init() {
	sf := func(cmd *cobra.Command) {
		f := cmd.Flags()
		f.StringVar(&skillForm.Name, "name", "", "skill name")
		f.StringVar(&skillForm.Category, "category", "", "grouping category")
		f.IntVar(&skillForm.Order, "order", 0, "display order")
	}
	sf(skillsAddCmd)
	sf(skillsEditCmd)
	skillsRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	skillsCmd.AddCommand(skillsListCmd, skillsAddCmd, skillsEditCmd, skillsRmCmd)

	ef := func(cmd *cobra.Command) {
		f := cmd.Flags()
		f.StringVar(&experienceForm.Title, "title", "", "job title")
		f.StringVar(&experienceForm.Company, "company", "", "company name")
		f.StringVar(&experienceForm.Location, "location", "", "location")
		f.StringVar(&experienceForm.Period, "period", "", "time period")
		f.StringVar(&experienceForm.Responsibilities, "responsibilities", "", "responsibilities, one per line")
		f.IntVar(&experienceForm.Order, "order", 0, "display order")
	}
	ef(experienceAddCmd)
	ef(experienceEditCmd)
	experienceRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	experienceCmd.AddCommand(experienceListCmd, experienceAddCmd, experienceEditCmd, experienceRmCmd)

	edf := func(cmd *cobra.Command) {
		f := cmd.Flags()
		f.StringVar(&educationForm.Degree, "degree", "", "degree name")
		f.StringVar(&educationForm.Institution, "institution", "", "institution")
		f.StringVar(&educationForm.FieldOfStudy, "field", "", "field of study")
		f.StringVar(&educationForm.Location, "location", "", "location")
		f.StringVar(&educationForm.Period, "period", "", "time period")
		f.StringVar(&educationForm.Description, "description", "", "description")
		f.StringVar(&educationForm.Highlights, "highlights", "", "highlights, one per line")
		f.IntVar(&educationForm.Order, "order", 0, "display order")
	}
	edf(educationAddCmd)
	edf(educationEditCmd)
	educationRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	educationCmd.AddCommand(educationListCmd, educationAddCmd, educationEditCmd, educationRmCmd)

	cf := func(cmd *cobra.Command) {
		f := cmd.Flags()
		f.StringVar(&certForm.Name, "name", "", "certification name")
		f.StringVar(&certForm.IssuingOrganization, "org", "", "issuing organization")
		f.StringVar(&certForm.Year, "year", "", "year awarded")
		f.StringVar(&certForm.CertificateURL, "url", "", "certificate URL")
		f.IntVar(&certForm.Order, "order", 0, "display order")
	}
	cf(certsAddCmd)
	cf(certsEditCmd)
	certsRmCmd.Flags().BoolP("yes", "y", false, "confirm deletion")
	certsCmd.AddCommand(certsListCmd, certsAddCmd, certsEditCmd, certsRmCmd)

	rootCmd.AddCommand(skillsCmd, experienceCmd, educationCmd, certsCmd)
}
