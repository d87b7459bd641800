package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/spf13/cobra"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections",
	}

	cmd.AddCommand(
		newSectionAddCmd(app),
		newSectionListCmd(app),
		newSectionRenameCmd(app),
		newSectionRemoveCmd(app),
	)

	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new section",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Section{Name: name}
			if err := app.Sections.Create(context.Background(), s); err != nil {
				return err
			}
			fmt.Printf("Created section %s [%s]\n", s.Name, s.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSectionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sections with their teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sections, err := app.Sections.List(ctx)
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Println("No sections found.")
				return nil
			}

			rows := make([][]string, 0, len(sections))
			for _, s := range sections {
				teams, err := app.Teams.ListBySection(ctx, s.ID)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.Bold(s.Name),
					fmt.Sprintf("%d", len(teams)),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "TEAMS"}, rows))
			return nil
		},
	}
}

func newSectionRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename ID",
		Short: "Rename a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSectionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sections.Rename(ctx, id, name); err != nil {
				return err
			}
			fmt.Printf("Renamed section to %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New section name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSectionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sections.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Section removed.")
			return nil
		},
	}
}
