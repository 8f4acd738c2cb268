package questionnaire

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the six nervous system types. The string value
// is the canonical type name; the analysis request carries the section
// titles ("Type 1: ...") instead.
type Category string

const (
	DeeplyFeeling            Category = "Deeply Feeling / Sensitive Child"
	HighlyReactive           Category = "Highly Reactive / Big Reactor Child"
	SlowToWarmUp             Category = "Slow to Warm Up / Cautious Child"
	HighEnergy               Category = "High Energy / Sensory Seeking Child"
	LowEnergy                Category = "Low Energy / Sensory Avoidant Child"
	EmotionallySelfContained Category = "Emotionally Self-Contained / Steady Child"
)

// AllCategories lists every category in catalog order.
var AllCategories = []Category{
	DeeplyFeeling,
	HighlyReactive,
	SlowToWarmUp,
	HighEnergy,
	LowEnergy,
	EmotionallySelfContained,
}

var categoryKeys = map[Category]string{
	DeeplyFeeling:            "deeply_feeling",
	HighlyReactive:           "highly_reactive",
	SlowToWarmUp:             "slow_to_warm_up",
	HighEnergy:               "high_energy",
	LowEnergy:                "low_energy",
	EmotionallySelfContained: "emotionally_self_contained",
}

// Key returns a stable machine-readable identifier for the category.
func (c Category) Key() string {
	return categoryKeys[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryKeys[c]
	return ok
}

func (c Category) String() string { return string(c) }

// AgeBand selects which question wording is used.
type AgeBand string

const (
	AgeBandGeneral AgeBand = "general"
	AgeBandToddler AgeBand = "toddler"
)

var ErrUnknownAgeBand = errors.New("questionnaire: unknown age band")

// ParseAgeBand maps external text onto an AgeBand. An empty value selects
// the general catalog.
func ParseAgeBand(s string) (AgeBand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general", "child":
		return AgeBandGeneral, nil
	case "toddler":
		return AgeBandToddler, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAgeBand, s)
	}
}

// Question is a single yes/no statement.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Section groups the questions of one category together with its display text.
type Section struct {
	Category    Category   `json:"category"`
	Title       string     `json:"title"`
	ShortTitle  string     `json:"shortTitle,omitempty"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// DisplayShortTitle falls back to Title when no short title is set.
func (s Section) DisplayShortTitle() string {
	if strings.TrimSpace(s.ShortTitle) != "" {
		return s.ShortTitle
	}
	return s.Title
}
