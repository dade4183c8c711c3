package hero

import (
	"fmt"

	"github.com/muliwe/hero-strength/internal/classifier"
)

// Line is a rendered roster entry
type Line struct {
	Hero   Hero
	Result classifier.Result
}

// Recorder receives every classification made while rendering
type Recorder interface {
	LogResult(result classifier.Result, source string) error
}

// Renderer turns a roster into display lines
type Renderer struct {
	classifier *classifier.Classifier
	recorder   Recorder
}

// NewRenderer creates a renderer. recorder may be nil.
func NewRenderer(c *classifier.Classifier, recorder Recorder) *Renderer {
	return &Renderer{
		classifier: c,
		recorder:   recorder,
	}
}

// Render classifies every hero in roster order.
// It stops at the first hero whose strength is not a real number.
func (r *Renderer) Render(roster Roster) ([]Line, error) {
	lines := make([]Line, 0, len(roster))
	for _, h := range roster {
		result, err := r.classifier.Evaluate(h.Strength)
		if err != nil {
			return nil, fmt.Errorf("hero %d (%s): %w", h.ID, h.Name, err)
		}
		if r.recorder != nil {
			if err := r.recorder.LogResult(result, fmt.Sprintf("hero:%d", h.ID)); err != nil {
				return nil, fmt.Errorf("hero %d: record result: %w", h.ID, err)
			}
		}
		lines = append(lines, Line{
			Hero:   h,
			Result: result,
		})
	}
	return lines, nil
}

// String renders the line as "<id> <name>: <display>"
func (l Line) String() string {
	return FormatLine(l.Hero, l.Result.Display)
}

// FormatLine renders a hero next to an already formatted strength
func FormatLine(h Hero, display string) string {
	return fmt.Sprintf("%d %s: %s", h.ID, h.Name, display)
}
