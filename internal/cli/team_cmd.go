package cli

import (
	"context"
	"fmt"

	"github.com/ricardofreitas/staffing/internal/cli/formatter"
	"github.com/ricardofreitas/staffing/internal/domain"
	"github.com/ricardofreitas/staffing/internal/repository"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage teams",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamRenameCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, section string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new team inside a section",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sectionID, err := resolveSectionID(ctx, app, section)
			if err != nil {
				return err
			}
			t := &domain.Team{Name: name, SectionID: sectionID}
			if err := app.Teams.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created team %s [%s]\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().StringVar(&section, "section", "", "Section ID or name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var teams []*domain.Team
			var err error
			if section != "" {
				sectionID, rerr := resolveSectionID(ctx, app, section)
				if rerr != nil {
					return rerr
				}
				teams, err = app.Teams.ListBySection(ctx, sectionID)
			} else {
				teams, err = app.Teams.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(teams) == 0 {
				fmt.Println("No teams found.")
				return nil
			}

			rows := make([][]string, 0, len(teams))
			for _, t := range teams {
				members, err := app.Resources.List(ctx, repository.ResourceFilter{TeamID: t.ID})
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					formatter.Bold(t.Name),
					fmt.Sprintf("%d", len(members)),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "MEMBERS"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Only teams in this section")

	return cmd
}

func newTeamRenameCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "rename ID",
		Short: "Rename a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Rename(ctx, id, name); err != nil {
				return err
			}
			fmt.Printf("Renamed team to %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New team name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Team removed.")
			return nil
		},
	}
}
