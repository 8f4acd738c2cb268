package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurotype/internal/questionnaire"
)

func answerAll(catalog questionnaire.Catalog, cat questionnaire.Category, n int, v bool) Answers {
	out := Answers{}
	s, _ := catalog.Section(cat)
	for i := 0; i < n && i < len(s.Questions); i++ {
		out[s.Questions[i].ID] = v
	}
	return out
}

func merge(sets ...Answers) Answers {
	out := Answers{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

func TestScore_EveryCategoryPresent(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandGeneral)
	for _, answers := range []Answers{nil, {}, {"t1_q1": true}, {"unknown": true}} {
		res := Score(catalog, answers)
		require.Len(t, res.Scores, 6)
		require.Len(t, res.ByType, 6)
		for _, cat := range catalog.Categories() {
			n, ok := res.ByType[cat]
			assert.True(t, ok, "missing %s", cat)
			assert.GreaterOrEqual(t, n, 0)
		}
	}
}

func TestScore_AllFalseOrUnanswered(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandGeneral)
	answers := Answers{}
	for _, s := range catalog.Sections() {
		for i, q := range s.Questions {
			if i%2 == 0 {
				answers[q.ID] = false
			}
		}
	}
	res := Score(catalog, answers)
	for _, cs := range res.Scores {
		assert.Zero(t, cs.Score)
		assert.Zero(t, cs.Share)
	}
	assert.Empty(t, res.Dominant)
	assert.False(t, res.HasDominant())
	assert.Empty(t, res.DominantTitles())
	assert.Equal(t, 0, res.Max)
}

func TestScore_SumEqualsTrueCount(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandToddler)
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		answers := Answers{}
		trues := 0
		for _, s := range catalog.Sections() {
			for _, q := range s.Questions {
				switch rng.Intn(3) {
				case 0:
					answers[q.ID] = true
					trues++
				case 1:
					answers[q.ID] = false
				}
			}
		}
		// ids from the other catalog never count
		answers["t1_q1"] = true

		res := Score(catalog, answers)
		sum := 0
		for _, n := range res.ByType {
			sum += n
		}
		require.Equal(t, trues, sum)
		require.Equal(t, trues, res.Total)
	}
}

func TestScore_AllHighEnergy(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandGeneral)
	res := Score(catalog, answerAll(catalog, questionnaire.HighEnergy, 7, true))

	for _, cs := range res.Scores {
		if cs.Category == questionnaire.HighEnergy {
			assert.Equal(t, 7, cs.Score)
			assert.Equal(t, 1.0, cs.Share)
			continue
		}
		assert.Zero(t, cs.Score, cs.Category)
	}
	assert.Equal(t, []questionnaire.Category{questionnaire.HighEnergy}, res.Dominant)
	assert.Equal(t, []string{"Type 4: High Energy / Sensory Seeking"}, res.DominantTitles())
}

func TestScore_TieKeepsAllMembers(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandGeneral)
	answers := merge(
		answerAll(catalog, questionnaire.DeeplyFeeling, 4, true),
		answerAll(catalog, questionnaire.LowEnergy, 4, true),
		answerAll(catalog, questionnaire.HighlyReactive, 3, true),
		answerAll(catalog, questionnaire.HighEnergy, 7, false),
	)
	res := Score(catalog, answers)

	assert.Equal(t, []questionnaire.Category{questionnaire.DeeplyFeeling, questionnaire.LowEnergy}, res.Dominant)
	assert.Equal(t, 4, res.ScoreOf(questionnaire.DeeplyFeeling))
	assert.Equal(t, 4, res.ScoreOf(questionnaire.LowEnergy))
	assert.Equal(t, 3, res.ScoreOf(questionnaire.HighlyReactive))
	assert.Len(t, res.DominantScores(), 2)
}

func TestScore_OrderIndependent(t *testing.T) {
	base := questionnaire.ForAgeBand(questionnaire.AgeBandGeneral)
	answers := merge(
		answerAll(base, questionnaire.SlowToWarmUp, 5, true),
		answerAll(base, questionnaire.EmotionallySelfContained, 5, true),
		answerAll(base, questionnaire.DeeplyFeeling, 2, true),
	)
	want := Score(base, answers)

	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 20; iter++ {
		sections := make([]questionnaire.Section, 0, 6)
		for _, s := range base.Sections() {
			qs := append([]questionnaire.Question(nil), s.Questions...)
			rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
			s.Questions = qs
			sections = append(sections, s)
		}
		rng.Shuffle(len(sections), func(i, j int) { sections[i], sections[j] = sections[j], sections[i] })

		got := Score(questionnaire.NewCatalog(base.AgeBand(), sections), answers)
		assert.Equal(t, want.ByType, got.ByType)
		assert.ElementsMatch(t, want.Dominant, got.Dominant)
	}

	again := Score(base, answers)
	assert.Equal(t, want, again)
}

func TestScore_IgnoresUnknownIDs(t *testing.T) {
	catalog := questionnaire.ForAgeBand(questionnaire.AgeBandToddler)
	res := Score(catalog, Answers{"t1_q1": true, "made_up": true})
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Dominant)
}
