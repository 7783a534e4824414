package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/FelixWeichselgartner/HealthAgent/internal/plan"
	"github.com/FelixWeichselgartner/HealthAgent/internal/prompt"
)

var (
	weekStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

type PlanShowCmd struct{}

// Run resolves the plan through the source chain and prints it. The store
// must yield data or a configured planner API must answer, otherwise this is
// a hard error, not an empty listing.
func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	lines, err := plan.Resolve(context.Background(), ctx.PlanSources()...)
	if err != nil {
		return err
	}

	fmt.Println(weekStyle.Render("Trainingsplan " + prompt.WeekLabel(time.Now())))
	for _, line := range lines {
		// Highlight the day prefix, keep the rest plain.
		if len(line) > 3 && line[2] == ':' {
			fmt.Println(dayStyle.Render(line[:3]) + line[3:])
		} else {
			fmt.Println(line)
		}
	}
	return nil
}

// PlanSources builds the source precedence chain: the local store first, the
// planner API as fallback when a base URL is configured.
func (c *Context) PlanSources() []plan.Source {
	sources := []plan.Source{&plan.StoreSource{Store: c.Store}}
	if c.APIBase != "" {
		sources = append(sources, plan.NewAPISource(c.APIBase))
	}
	return sources
}
