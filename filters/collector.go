package filters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/prompt"
)

// Collector asks for a city, a month and a day until each answer is valid.
type Collector struct {
	prompt *prompt.Prompter
	caser  cases.Caser
}

// NewCollector creates a collector that asks through p.
func NewCollector(p *prompt.Prompter) *Collector {
	return &Collector{prompt: p, caser: cases.Title(language.English)}
}

// Collect runs the three prompts in order. It only fails when the console
// does or ctx is cancelled; invalid answers are asked again without limit.
func (c *Collector) Collect(ctx context.Context) (Selection, error) {
	out := c.prompt.Writer()
	fmt.Fprintln(out, "Hello! Let's explore some US bikeshare data!")

	city, err := c.choose(ctx, "city - name of the city to analyze:", Cities())
	if err != nil {
		return Selection{}, err
	}
	month, err := c.choose(ctx, `month - name of the month to filter by, or "all" to apply no month filter?`, MonthChoices())
	if err != nil {
		return Selection{}, err
	}
	day, err := c.choose(ctx, `day - name of the day of week to filter by, or "all" to apply no day filter?`, DayChoices())
	if err != nil {
		return Selection{}, err
	}

	fmt.Fprintln(out, prompt.Separator)
	return Selection{City: city, Month: month, Day: day}, nil
}

// Normalize trims s and converts it to title case, so "new york city"
// becomes "New York City".
func (c *Collector) Normalize(s string) string {
	return c.caser.String(strings.TrimSpace(s))
}

func (c *Collector) choose(ctx context.Context, question string, choices []string) (string, error) {
	out := c.prompt.Writer()
	list := strings.Join(choices, ", ")
	fmt.Fprintln(out, question)
	fmt.Fprintln(out, list)
	for {
		answer, err := c.prompt.Ask(ctx, "Selection: ")
		if err != nil {
			return "", err
		}
		value := c.Normalize(answer)
		if slices.Contains(choices, value) {
			return value, nil
		}
		fmt.Fprintf(out, "please select from the available options:\n%s\n", list)
	}
}
