package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/FelixWeichselgartner/HealthAgent/internal/models"
)

//go:embed prompt.tmpl
var promptTemplate string

var tmpl = template.Must(template.New("prompt").Funcs(template.FuncMap{
	"deref": func(p *float64) string {
		if p == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f", *p)
	},
	"derefInt": func(p *int) string {
		if p == nil {
			return "n/a"
		}
		return fmt.Sprintf("%d", *p)
	},
	"join": strings.Join,
}).Parse(promptTemplate))

// Render produces the final prompt text from an assembled context.
func Render(ctx models.PromptContext) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return sb.String(), nil
}
