package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectUpdateCmd(app),
		newProjectArchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, code, section string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sectionID, err := resolveSectionID(ctx, app, section)
			if err != nil {
				return err
			}

			p := &domain.Project{
				Name:        name,
				CompanyCode: code,
				SectionID:   sectionID,
				Status:      domain.ProjectActive,
			}
			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Created project %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&code, "code", "", "Company code (2-10 uppercase letters or digits)")
	cmd.Flags().StringVar(&section, "section", "", "Section ID or name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var section string
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			filter := repository.ProjectFilter{ActiveOnly: !all}
			if section != "" {
				sectionID, err := resolveSectionID(ctx, app, section)
				if err != nil {
					return err
				}
				filter.SectionID = sectionID
			}

			projects, err := app.Projects.List(ctx, filter)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				rows = append(rows, []string{
					p.CompanyCode,
					formatter.Bold(p.Name),
					formatter.ProjectStatusPill(p.Status),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"CODE", "NAME", "STATUS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Only projects in this section")
	cmd.Flags().BoolVar(&all, "all", false, "Include archived projects")

	return cmd
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, status string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("status") {
				p.Status = domain.ProjectStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&status, "status", "", "Status (active|paused|done|archived)")

	return cmd
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a project, hiding it from filter lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Println("Project archived.")
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Project removed.")
			return nil
		},
	}
}
