package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/FelixWeichselgartner/HealthAgent/internal/garmin"
	"github.com/FelixWeichselgartner/HealthAgent/internal/keyring"
	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/storage"
)

// Context is passed to every command by kong.
type Context struct {
	Store storage.Provider

	// Garmin client options, resolved from flags/env by main.
	TokenDir string
	Email    string
	Password string

	// APIBase enables the planner-API plan source when non-empty.
	APIBase string

	// ProfilePath is the athlete profile overlay (JSON).
	ProfilePath string
}

// GarminClient acquires the authenticated telemetry client. Credentials are
// resolved flag/env first, then the OS keyring; token files in TokenDir win
// over both.
func (c *Context) GarminClient(ctx context.Context) (garmin.API, error) {
	email, password := c.Email, c.Password
	if email == "" || password == "" {
		creds, err := keyring.GetCredentials()
		if err == nil {
			email, password = creds.Email, creds.Password
		} else {
			logger.Debug("No keyring credentials", "error", err)
		}
	}

	return garmin.NewClient(ctx, garmin.Options{
		TokenDir: c.TokenDir,
		Email:    email,
		Password: password,
	})
}

// ParseDay parses a weekday given as index (0=Mo..6=So) or as a German
// day name/abbreviation.
func ParseDay(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	dayMap := map[string]int{
		"mo": 0, "montag": 0,
		"di": 1, "dienstag": 1,
		"mi": 2, "mittwoch": 2,
		"do": 3, "donnerstag": 3,
		"fr": 4, "freitag": 4,
		"sa": 5, "samstag": 5,
		"so": 6, "sonntag": 6,
	}
	if d, ok := dayMap[s]; ok {
		return d, nil
	}

	if num, err := strconv.Atoi(s); err == nil && num >= 0 && num <= 6 {
		return num, nil
	}
	return 0, fmt.Errorf("invalid weekday: %s", s)
}

