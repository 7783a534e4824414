package prompt

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FelixWeichselgartner/HealthAgent/internal/logger"
	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

// LoadProfile reads the athlete profile overlay from path. A missing file is
// not an error: the built-in empty defaults are returned so the tool works
// before a profile exists.
func LoadProfile(path string) (models.PromptContext, error) {
	base := models.DefaultPromptContext()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No profile file, using defaults", "path", path)
			return base, nil
		}
		return base, fmt.Errorf("failed to read profile: %w", err)
	}

	if err := json.Unmarshal(data, &base); err != nil {
		return models.DefaultPromptContext(), fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return base, nil
}
