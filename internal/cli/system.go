package cli

import (
	"fmt"

	"github.com/FelixWeichselgartner/HealthAgent/internal/keyring"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Storage initialized at %s\n", ctx.Store.GetConfigPath())
	return nil
}

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("store already contains %d workouts, refusing to seed", len(existing))
	}

	if err := storage.Seed(ctx.Store); err != nil {
		return err
	}
	fmt.Println("Sample week and exercise catalog created. Run 'healthagent plan' to see it.")
	return nil
}

type LoginCmd struct {
	Email    string `arg:"" help:"Garmin Connect account email."`
	Password string `help:"Garmin Connect password. Falls back to the GARMIN_PASSWORD environment variable." env:"GARMIN_PASSWORD"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Password == "" {
		return fmt.Errorf("no password given, pass --password or set GARMIN_PASSWORD")
	}
	if err := keyring.SetCredentials(keyring.Credentials{
		Email:    c.Email,
		Password: c.Password,
	}); err != nil {
		return err
	}
	fmt.Println("Garmin credentials stored in the OS keyring.")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteCredentials(); err != nil {
		return err
	}
	fmt.Println("Garmin credentials removed from the OS keyring.")
	return nil
}
