package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nutricalc/nutricalc/internal/domain"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderExerciseCatalog lists activities grouped by category.
func RenderExerciseCatalog(catalog domain.ExerciseCatalog) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Exercise Catalog") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	for _, cat := range catalog.Categories() {
		activities := catalog[cat]
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s %s\n",
			sectionHeaderStyle.Render(cat),
			dimStyle.Render(fmt.Sprintf("(%d)", len(activities))),
		)
		for _, a := range activities {
			fmt.Fprintf(&b, "    %s %s %s  %s\n",
				passStyle.Render("●"),
				padRight(a.DisplayName(), 22),
				faintStyle.Render(padRight(a.ID, 20)),
				valueStyle.Render(fmt.Sprintf("%.1f MET", a.MET)),
			)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderMeals lists the meal catalog.
func RenderMeals(meals []domain.Meal) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Meal Catalog") + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(meals))) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, m := range meals {
		fmt.Fprintf(&b, "    %s %s %s\n",
			passStyle.Render("●"),
			padRight(m.Name, 30),
			valueStyle.Render(fmt.Sprintf("%d kcal", m.Calories)),
		)
		fmt.Fprintf(&b, "      %s\n", faintStyle.Render(macroLine(m.Protein, m.Carbs, m.Fat)))
	}
	b.WriteString("\n")
	return b.String()
}
