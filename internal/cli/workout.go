package cli

import (
	"fmt"
	"strings"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
	"github.com/FelixWeichselgartner/HealthAgent/internal/plan"
)

type WorkoutAddCmd struct {
	Title     string `arg:"" help:"Session title."`
	Day       string `required:"" help:"Weekday (0=Mo..6=So or German name, e.g. 'Di')."`
	Type      string `default:"other" enum:"strength,cardio,golf,other" help:"Session type."`
	Duration  int    `help:"Duration in minutes."`
	Intensity string `help:"Intensity, e.g. 'RPE 3'."`
	Notes     string `help:"Free-form notes."`
	Position  int    `help:"Order within the day."`
}

func (c *WorkoutAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ParseDay(c.Day)
	if err != nil {
		return err
	}

	w := models.Workout{
		Day:       day,
		Position:  c.Position,
		Type:      c.Type,
		Title:     c.Title,
		Intensity: c.Intensity,
		Notes:     c.Notes,
	}
	if c.Duration > 0 {
		w.DurationMin = &c.Duration
	}

	id, err := ctx.Store.AddWorkout(w)
	if err != nil {
		return err
	}
	fmt.Printf("Workout %d added (%s)\n", id, plan.FormatLine(day, w))
	return nil
}

type WorkoutListCmd struct{}

func (c *WorkoutListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts. Add one with 'healthagent workout add' or run 'healthagent seed'.")
		return nil
	}

	for _, w := range workouts {
		var extras []string
		if len(w.Exercises) > 0 {
			extras = append(extras, fmt.Sprintf("%d exercises", len(w.Exercises)))
		}
		suffix := ""
		if len(extras) > 0 {
			suffix = " [" + strings.Join(extras, ", ") + "]"
		}
		fmt.Printf("%4d  %s%s\n", w.ID, plan.FormatLine(w.Day, w), suffix)
	}
	return nil
}

type WorkoutDeleteCmd struct {
	ID int64 `arg:"" help:"Workout id to delete."`
}

func (c *WorkoutDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteWorkout(c.ID); err != nil {
		return err
	}
	fmt.Printf("Workout %d deleted\n", c.ID)
	return nil
}

type ExerciseAddCmd struct {
	Name     string `arg:"" help:"Exercise name (unique)."`
	VideoURL string `help:"Optional reference video URL."`
}

func (c *ExerciseAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	id, err := ctx.Store.AddExercise(models.Exercise{Name: c.Name, VideoURL: c.VideoURL})
	if err != nil {
		return err
	}
	fmt.Printf("Exercise %d added: %s\n", id, c.Name)
	return nil
}

type ExerciseListCmd struct{}

func (c *ExerciseListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	exercises, err := ctx.Store.GetAllExercises()
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		fmt.Println("Exercise catalog is empty.")
		return nil
	}
	for _, e := range exercises {
		line := fmt.Sprintf("%4d  %s", e.ID, e.Name)
		if e.VideoURL != "" {
			line += "  (" + e.VideoURL + ")"
		}
		fmt.Println(line)
	}
	return nil
}
