package classifier

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Label is a strength bucket
type Label string

const (
	LabelWeak         Label = "weak"
	LabelStrong       Label = "strong"
	LabelUnbelievable Label = "unbelievable"
)

const (
	// StrongMin is the lowest value classified as strong
	StrongMin = 10
	// StrongMax is the highest value classified as strong
	StrongMax = 20
)

// Result is the outcome of a single classification
type Result struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Label     Label     `json:"label"`
	Display   string    `json:"display"`
}

// Config holds classifier configuration
type Config struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// NewID returns a request identifier. Defaults to a random UUID.
	NewID func() string
}

// DefaultConfig returns default classifier configuration
func DefaultConfig() Config {
	return Config{
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
	}
}

// Classifier stamps classifications with request metadata
type Classifier struct {
	now   func() time.Time
	newID func() string
}

// New creates a new classifier
func New(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.Now == nil {
		cfg.Now = def.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = def.NewID
	}
	return &Classifier{
		now:   cfg.Now,
		newID: cfg.NewID,
	}
}

// Evaluate classifies value and returns the full result
func (c *Classifier) Evaluate(value float64) (Result, error) {
	label, display, err := classify(value)
	if err != nil {
		return Result{}, err
	}

	return Result{
		RequestID: c.newID(),
		Timestamp: c.now().UTC(),
		Value:     value,
		Label:     label,
		Display:   display,
	}, nil
}

// Classify renders value as "<value> (<label>)".
// Both ends of the strong range are inclusive.
func Classify(value float64) (string, error) {
	_, display, err := classify(value)
	return display, err
}

func classify(value float64) (Label, string, error) {
	label, err := LabelFor(value)
	if err != nil {
		return "", "", err
	}
	return label, FormatValue(value) + " (" + string(label) + ")", nil
}

// LabelFor returns the bucket for value
func LabelFor(value float64) (Label, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", &InvalidInputError{Value: value}
	}

	switch {
	case value < StrongMin:
		return LabelWeak, nil
	case value <= StrongMax:
		return LabelStrong, nil
	default:
		return LabelUnbelievable, nil
	}
}

// FormatValue renders value in its shortest decimal form, without exponent
func FormatValue(value float64) string {
	if value == 0 {
		// collapse -0
		value = 0
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
