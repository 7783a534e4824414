package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/FelixWeichselgartner/HealthAgent/internal/garmin"
	"github.com/FelixWeichselgartner/HealthAgent/internal/plan"
	"github.com/FelixWeichselgartner/HealthAgent/internal/prompt"
)

// PromptCmd builds the full coaching context (plan plus telemetry), renders
// it through the prompt template and prints it. The plan is mandatory; the
// VO2max and sleep facets degrade to absence on failure.
type PromptCmd struct {
	Limit     int    `default:"30" help:"Recent activities to include."`
	SleepDays int    `default:"7" help:"Days of sleep to aggregate."`
	Out       string `default:"prompt_out.txt" help:"Also write the prompt to this file ('' to skip)."`
}

func (c *PromptCmd) Run(ctx *Context) error {
	bg := context.Background()

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Plan first: without it there is nothing worth rendering.
	planLines, err := plan.Resolve(bg, ctx.PlanSources()...)
	if err != nil {
		return err
	}

	api, err := ctx.GarminClient(bg)
	if err != nil {
		return err
	}

	now := time.Now()
	activities, err := garmin.RecentActivities(bg, api, c.Limit)
	if err != nil {
		return err
	}

	tele := prompt.Telemetry{
		VO2Max:     garmin.VO2MaxToday(bg, api, now),
		Sleep:      garmin.SleepLastNDays(bg, api, c.SleepDays, now),
		Activities: activities,
	}

	base, err := prompt.LoadProfile(ctx.ProfilePath)
	if err != nil {
		return err
	}

	assembled := prompt.Assemble(base, planLines, tele, now)
	text, err := prompt.Render(assembled)
	if err != nil {
		return err
	}

	fmt.Print(text)
	if c.Out != "" {
		if err := os.WriteFile(c.Out, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Out, err)
		}
	}
	return nil
}
