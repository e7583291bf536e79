package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nutricalc/nutricalc/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(danger).
			Foreground(danger).
			Padding(0, 2).
			Width(68)

	categoryColors = map[string]lipgloss.Color{
		"underweight": warning,
		"normal":      success,
		"overweight":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderCalculation formats a result and its menu for the terminal.
func RenderCalculation(calc *domain.Calculation) string {
	var b strings.Builder
	r := calc.Result

	// ── Header ──
	title := headerStyle.Render("nutricalc")
	subtitle := dimStyle.Render("Results & Recommendations")
	target := valueStyle.Render(fmt.Sprintf("%d kcal / day", r.TargetCalories))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + target))
	b.WriteString("\n\n")

	// ── Metrics ──
	b.WriteString("  " + titleStyle.Render("Metrics") + "\n\n")
	renderMetric(&b, "BMR", fmt.Sprintf("%d kcal", r.BMR), "")
	renderMetric(&b, "TDEE", fmt.Sprintf("%d kcal", r.TDEE), exerciseNote(r))
	renderMetric(&b, "Target", fmt.Sprintf("%d kcal", r.TargetCalories), "")
	renderMetric(&b, "BMI", r.BMI, lipgloss.NewStyle().Foreground(categoryColor(r.BMICategory)).Render(r.BMICategory))
	if r.BodyFat != nil {
		renderMetric(&b, "Body fat", *r.BodyFat+"%", "")
	}
	if r.WHR != nil {
		note := ""
		if r.Warnings.HighWHR {
			note = failStyle.Render("high cardiovascular risk")
		}
		renderMetric(&b, "WHR", *r.WHR, note)
	}

	if skipped := skippedExercises(r.Exercises); len(skipped) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "    %s %s\n", warnStyle.Render("●"),
			dimStyle.Render("unknown exercise types ignored: "+strings.Join(skipped, ", ")))
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Menu ──
	renderMenu(&b, calc.Menu)

	// ── Warnings ──
	if r.Warnings.LowCalorie {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render("Warning: the calorie target is below your BMR. Adjust your goal."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderMetric(b *strings.Builder, label, value, note string) {
	line := fmt.Sprintf("    %s %s", labelStyle.Render(padRight(label, 10)), valueStyle.Render(value))
	if note != "" {
		line += "  " + note
	}
	b.WriteString(line + "\n")
}

func renderMenu(b *strings.Builder, m domain.DailyMenu) {
	b.WriteString("  " + titleStyle.Render("Suggested Menu") + "  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d meals, %d kcal", len(m.Meals), m.Totals.Calories)))
	b.WriteString("\n\n")

	if len(m.Meals) == 0 {
		b.WriteString("    " + dimStyle.Render("No meals fit the target.") + "\n")
		return
	}

	for _, meal := range m.Meals {
		fmt.Fprintf(b, "    %s %s %s\n",
			passStyle.Render("●"),
			padRight(meal.Name, 30),
			valueStyle.Render(fmt.Sprintf("%d kcal", meal.Calories)),
		)
		fmt.Fprintf(b, "      %s\n", faintStyle.Render(macroLine(meal.Protein, meal.Carbs, meal.Fat)))
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "    %s %s\n", labelStyle.Render(padRight("Total", 30)),
		dimStyle.Render(macroLine(m.Totals.Protein, m.Totals.Carbs, m.Totals.Fat)))
}

func macroLine(protein, carbs, fat float64) string {
	return fmt.Sprintf("Protein: %gg | Carbs: %gg | Fat: %gg", protein, carbs, fat)
}

func exerciseNote(r domain.CalculationResult) string {
	if r.ExerciseCalories == 0 {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("incl. %d kcal exercise", r.ExerciseCalories))
}

func skippedExercises(entries []domain.EntryEnergy) []string {
	var skipped []string
	for _, e := range entries {
		if !e.Found {
			skipped = append(skipped, e.Entry.Type)
		}
	}
	return skipped
}

func categoryColor(category string) lipgloss.Color {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
