package rpc

import (
	"neurotype/internal/questionnaire"
	"neurotype/internal/scoring"
)

func toCatalogResponse(c questionnaire.Catalog) *GetCatalogResponse {
	out := &GetCatalogResponse{
		AgeBand:       string(c.AgeBand()),
		QuestionCount: c.QuestionCount(),
		Sections:      make([]Section, 0, len(c.Sections())),
	}
	for _, s := range c.Sections() {
		sec := Section{
			Category:    s.Category.Key(),
			Name:        string(s.Category),
			Title:       s.Title,
			ShortTitle:  s.DisplayShortTitle(),
			Description: s.Description,
			Questions:   make([]Question, 0, len(s.Questions)),
		}
		for _, q := range s.Questions {
			sec.Questions = append(sec.Questions, Question{ID: q.ID, Text: q.Text})
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

func toScoreResponse(c questionnaire.Catalog, r scoring.Result) ScoreResponse {
	dominant := make(map[questionnaire.Category]bool, len(r.Dominant))
	keys := make([]string, 0, len(r.Dominant))
	for _, cat := range r.Dominant {
		dominant[cat] = true
		keys = append(keys, cat.Key())
	}

	out := ScoreResponse{
		Scores:         make([]CategoryScore, 0, len(r.Scores)),
		Dominant:       keys,
		DominantTitles: r.DominantTitles(),
		Max:            r.Max,
		Total:          r.Total,
		Summary:        scoring.Summary(r),
	}
	for _, s := range r.Scores {
		cs := CategoryScore{
			Category: s.Category.Key(),
			Name:     string(s.Category),
			Title:    s.Title,
			Score:    s.Score,
			Share:    s.Share,
			Dominant: dominant[s.Category],
		}
		if sec, ok := c.Section(s.Category); ok {
			cs.ShortTitle = sec.DisplayShortTitle()
		}
		out.Scores = append(out.Scores, cs)
	}
	return out
}

// toAnswers drops null entries: a null answer is an unanswered question.
func toAnswers(in map[string]*bool) scoring.Answers {
	out := make(scoring.Answers, len(in))
	for id, v := range in {
		if v != nil {
			out[id] = *v
		}
	}
	return out
}
