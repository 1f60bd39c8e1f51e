package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"ftracker/internal/workout"
)

// RenderCard renders a summary as a bordered card
func RenderCard(s workout.Summary) string {
	rows := lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render(s.TrainingType),
		RenderMetric("Длительность", fmt.Sprintf("%.3f ч.", s.Duration)),
		RenderMetric("Дистанция", fmt.Sprintf("%.3f км", s.Distance)),
		RenderMetric("Ср. скорость", fmt.Sprintf("%.3f км/ч", s.Speed)),
		renderMetric("Потрачено ккал", fmt.Sprintf("%.3f", s.Calories), caloriesValueStyle),
	)
	return cardStyle.Render(rows)
}

// RenderAll stacks the cards of several summaries
func RenderAll(summaries []workout.Summary) string {
	cards := make([]string, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, RenderCard(s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// WritePackages writes the stacked cards, or nothing if any package fails
func WritePackages(w io.Writer, pkgs []workout.Package) error {
	summaries := make([]workout.Summary, 0, len(pkgs))
	for i, p := range pkgs {
		wk, err := workout.ReadPackage(p.Type, p.Data)
		if err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
		summaries = append(summaries, wk.Summary())
	}
	_, err := fmt.Fprintln(w, RenderAll(summaries))
	return err
}
