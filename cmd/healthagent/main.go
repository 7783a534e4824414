package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FelixWeichselgartner/HealthAgent/internal/cli"
	"github.com/FelixWeichselgartner/HealthAgent/internal/errors"
	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging to stderr."`
	Config  string `help:"Plan database path, or a PostgreSQL connection string (postgres://...). Credentials must NOT be embedded in the connection string." default:"~/.config/healthagent/planner.db"`

	TokenDir string `help:"Garmin token directory." default:"~/.garminconnect" type:"path"`
	Email    string `help:"Garmin Connect email." env:"GARMIN_EMAIL"`
	Password string `help:"Garmin Connect password." env:"GARMIN_PASSWORD"`
	APIBase  string `help:"Planner API base URL used as plan fallback source." env:"PLANNER_API_BASE" name:"api-base"`
	Profile  string `help:"Athlete profile JSON overlay." default:"~/.config/healthagent/profile.json" type:"path"`

	Init   cli.InitCmd   `cmd:"" help:"Initialize the plan store."`
	Seed   cli.SeedCmd   `cmd:"" help:"Create the sample week and exercise catalog."`
	Login  cli.LoginCmd  `cmd:"" help:"Store Garmin credentials in the OS keyring."`
	Logout cli.LogoutCmd `cmd:"" help:"Remove Garmin credentials from the OS keyring."`

	Plan   cli.PlanShowCmd `cmd:"" help:"Show the current training plan." default:"1"`
	Fetch  cli.FetchCmd    `cmd:"" help:"Print a JSON summary of the Garmin telemetry."`
	Prompt cli.PromptCmd   `cmd:"" help:"Assemble the coaching context and render the prompt."`
	Serve  cli.ServeCmd    `cmd:"" help:"Serve the planner JSON API."`

	Workout struct {
		Add    cli.WorkoutAddCmd    `cmd:"" help:"Add a workout."`
		List   cli.WorkoutListCmd   `cmd:"" help:"List all workouts."`
		Delete cli.WorkoutDeleteCmd `cmd:"" help:"Delete a workout."`
	} `cmd:"" help:"Manage workouts."`
	Exercise struct {
		Add  cli.ExerciseAddCmd  `cmd:"" help:"Add a catalog exercise."`
		List cli.ExerciseListCmd `cmd:"" help:"List the exercise catalog."`
	} `cmd:"" help:"Manage the exercise catalog."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Snapshot the plan database."`
		List    cli.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a snapshot."`
	} `cmd:"" help:"Manage plan database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("healthagent"),
		kong.Description("Training-plan keeper and Garmin-backed coaching prompt builder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	configDir := filepath.Dir(expandHome(CLI.Config))
	if strings.HasPrefix(CLI.Config, "postgres") {
		configDir = expandHome("~/.config/healthagent")
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			errors.Fatalf("PostgreSQL connection strings with embedded credentials are not allowed; use environment variables or .pgpass instead")
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(expandHome(CLI.Config))
	}

	appCtx := &cli.Context{
		Store:       store,
		TokenDir:    CLI.TokenDir,
		Email:       CLI.Email,
		Password:    CLI.Password,
		APIBase:     CLI.APIBase,
		ProfilePath: CLI.Profile,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
