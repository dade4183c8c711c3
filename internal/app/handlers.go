package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/muliwe/hero-strength/internal/classifier"
	"github.com/muliwe/hero-strength/internal/hero"
)

var labelColors = map[classifier.Label]*color.Color{
	classifier.LabelWeak:         color.New(color.FgRed),
	classifier.LabelStrong:       color.New(color.FgGreen),
	classifier.LabelUnbelievable: color.New(color.FgMagenta, color.Bold),
}

// ParseValue parses a command-line strength value
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", classifier.ErrInvalidInput, s)
	}
	return v, nil
}

// ClassifyArgs classifies each argument and prints one line per value.
// It stops at the first argument that is not a real number.
func (a *App) ClassifyArgs(args []string) error {
	for _, arg := range args {
		v, err := ParseValue(arg)
		if err != nil {
			return err
		}
		result, err := a.classifier.Evaluate(v)
		if err != nil {
			return err
		}
		if a.results != nil {
			if err := a.results.LogResult(result, "arg"); err != nil {
				a.log.Warn("failed to log result", zap.Error(err))
			}
		}
		a.log.Debug("classified",
			zap.String("request_id", result.RequestID),
			zap.Float64("value", result.Value),
			zap.String("label", string(result.Label)),
		)
		if _, err := fmt.Fprintln(a.out, a.display(result)); err != nil {
			return err
		}
	}
	return nil
}

// ShowRoster prints every hero in the roster file with its strength label
func (a *App) ShowRoster(path string) error {
	roster, err := hero.LoadRoster(path)
	if err != nil {
		return err
	}
	a.log.Debug("roster loaded", zap.String("path", path), zap.Int("heroes", len(roster)))

	lines, err := a.renderer.Render(roster)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(a.out, hero.FormatLine(l.Hero, a.display(l.Result))); err != nil {
			return err
		}
	}
	return nil
}

// ShowHero prints a single hero from the roster file
func (a *App) ShowHero(path string, id int) error {
	roster, err := hero.LoadRoster(path)
	if err != nil {
		return err
	}
	h, err := roster.Find(id)
	if err != nil {
		return err
	}
	lines, err := a.renderer.Render(hero.Roster{h})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, hero.FormatLine(h, a.display(lines[0].Result)))
	return err
}

func (a *App) display(r classifier.Result) string {
	c, ok := labelColors[r.Label]
	if !a.cfg.Color || !ok || color.NoColor {
		return r.Display
	}
	return classifier.FormatValue(r.Value) + " (" + c.Sprint(string(r.Label)) + ")"
}
