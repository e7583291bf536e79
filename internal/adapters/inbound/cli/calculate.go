package cli

import (
	"fmt"

	"github.com/nutricalc/nutricalc/internal/adapters/outbound/tui"
	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/spf13/cobra"
)

func newCalculateCmd(verbose *bool) *cobra.Command {
	var (
		raw        domain.RawPersonalInfo
		exercises  []string
		jsonOutput bool
		seed       uint64
		configDir  string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate metrics, calorie target and a daily menu",
		Long: "Compute BMR, BMI, body fat, WHR, TDEE and a goal-adjusted calorie target, then suggest a random menu within that target.\n\n" +
			"Exercises use the form type:intensity:minutes[:frequency], e.g. --exercise running:high:45:3.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := domain.ParsePersonalInfo(raw)
			if err != nil {
				return err
			}

			entries := make([]domain.ExerciseEntry, 0, len(exercises))
			for _, spec := range exercises {
				e, err := domain.ParseExerciseSpec(spec)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}

			svc, err := newCalculateService(configDir, seed, newLogger(cmd.ErrOrStderr(), *verbose))
			if err != nil {
				return err
			}

			calc, err := svc.Calculate(info, entries)
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, calc)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCalculation(calc))
			return nil
		},
	}

	cmd.Flags().StringVar(&raw.Gender, "gender", "male", "Gender (male, female)")
	cmd.Flags().StringVar(&raw.Age, "age", "", "Age in years (required)")
	cmd.Flags().StringVar(&raw.Weight, "weight", "", "Weight in kg (required)")
	cmd.Flags().StringVar(&raw.Height, "height", "", "Height in cm (required)")
	cmd.Flags().StringVar(&raw.ActivityLevel, "activity", "sedentary", "Activity level (sedentary, light, moderate, active, very_active or its multiplier)")
	cmd.Flags().StringVar(&raw.Goal, "goal", "maintain", "Goal (lose, maintain, gain)")
	cmd.Flags().StringVar(&raw.Waist, "waist", "", "Waist circumference in cm")
	cmd.Flags().StringVar(&raw.Hip, "hip", "", "Hip circumference in cm")
	cmd.Flags().StringVar(&raw.Neck, "neck", "", "Neck circumference in cm")
	cmd.Flags().StringArrayVar(&exercises, "exercise", nil, "Exercise as type:intensity:minutes[:frequency] (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for menu generation (0 = random)")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .nutricalc.yaml")

	return cmd
}
