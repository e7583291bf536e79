package cli

import (
	"fmt"

	"github.com/nutricalc/nutricalc/internal/adapters/outbound/config"
	"github.com/nutricalc/nutricalc/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var (
		jsonOutput bool
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the exercise and meal catalogs",
		Long:  "Show the reference catalogs used by calculate, including any overrides from .nutricalc.yaml.",
	}
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory containing .nutricalc.yaml")

	cmd.AddCommand(&cobra.Command{
		Use:   "exercises",
		Short: "List exercise activities and their MET values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, cfg.Exercises)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExerciseCatalog(cfg.Exercises))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "meals",
		Short: "List the meals menus are built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, cfg.Meals)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMeals(cfg.Meals))
			return nil
		},
	})

	return cmd
}
