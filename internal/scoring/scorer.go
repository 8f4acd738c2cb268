// Package scoring tallies questionnaire answers into per-category scores and
// picks the dominant categories.
package scoring

import (
	"neurotype/internal/questionnaire"
)

// Answers maps a question id to the parent's answer. A missing key means the
// question was skipped.
type Answers map[string]bool

// CategoryScore is the tally for one category.
type CategoryScore struct {
	Category questionnaire.Category `json:"category"`
	Title    string                 `json:"title"`
	Score    int                    `json:"score"`
	// Share is Score as a fraction of the total score, 0 when the total is 0.
	Share float64 `json:"share"`
}

// Result is derived from a catalog and an answer set; it is never updated in place.
type Result struct {
	Scores   []CategoryScore                `json:"scores"`
	ByType   map[questionnaire.Category]int `json:"-"`
	Max      int                            `json:"max"`
	Total    int                            `json:"total"`
	Dominant []questionnaire.Category       `json:"dominant"`
}

// Score counts the true answers of each catalog category. Every category is
// present in the result even with no answers. Answer ids not in the catalog
// are ignored. When every category scores zero the dominant set is empty.
func Score(catalog questionnaire.Catalog, answers Answers) Result {
	sections := catalog.Sections()
	byType := make(map[questionnaire.Category]int, len(sections))
	for _, s := range sections {
		byType[s.Category] = 0
	}

	total := 0
	for _, s := range sections {
		for _, q := range s.Questions {
			if answers[q.ID] {
				byType[s.Category]++
				total++
			}
		}
	}

	top := 0
	for _, n := range byType {
		if n > top {
			top = n
		}
	}

	res := Result{
		Scores: make([]CategoryScore, 0, len(sections)),
		ByType: byType,
		Max:    top,
		Total:  total,
	}
	for _, s := range sections {
		n := byType[s.Category]
		cs := CategoryScore{Category: s.Category, Title: s.Title, Score: n}
		if total > 0 {
			cs.Share = float64(n) / float64(total)
		}
		res.Scores = append(res.Scores, cs)
		if top > 0 && n == top {
			res.Dominant = append(res.Dominant, s.Category)
		}
	}
	return res
}

// HasDominant reports whether any category stands out. It is the gate for
// requesting an analysis.
func (r Result) HasDominant() bool { return len(r.Dominant) > 0 }

// ScoreOf returns the score of cat, 0 when cat is not in the catalog.
func (r Result) ScoreOf(cat questionnaire.Category) int {
	return r.ByType[cat]
}

// DominantTitles returns the display titles of the dominant categories in
// catalog order. These are the values sent to the analysis service.
func (r Result) DominantTitles() []string {
	out := make([]string, 0, len(r.Dominant))
	for _, cs := range r.DominantScores() {
		out = append(out, cs.Title)
	}
	return out
}

// DominantScores returns the score entries of the dominant categories.
func (r Result) DominantScores() []CategoryScore {
	if r.Max == 0 {
		return nil
	}
	var out []CategoryScore
	for _, cs := range r.Scores {
		if cs.Score == r.Max {
			out = append(out, cs)
		}
	}
	return out
}
