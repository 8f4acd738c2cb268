package rpc

import (
	"neurotype/internal/analysis"
)

type GetCatalogRequest struct {
	AgeBand string `json:"ageBand"`
}

type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Section struct {
	Category    string     `json:"category"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	ShortTitle  string     `json:"shortTitle"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type GetCatalogResponse struct {
	AgeBand       string    `json:"ageBand"`
	QuestionCount int       `json:"questionCount"`
	Sections      []Section `json:"sections"`
}

// ScoreRequest answers map question ids to true, false or null (unanswered).
type ScoreRequest struct {
	AgeBand string           `json:"ageBand"`
	Answers map[string]*bool `json:"answers"`
}

type CategoryScore struct {
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	ShortTitle string  `json:"shortTitle"`
	Score      int     `json:"score"`
	Share      float64 `json:"share"`
	Dominant   bool    `json:"dominant"`
}

type ScoreResponse struct {
	Scores         []CategoryScore `json:"scores"`
	Dominant       []string        `json:"dominant"`
	DominantTitles []string        `json:"dominantTitles"`
	Max            int             `json:"max"`
	Total          int             `json:"total"`
	Summary        string          `json:"summary"`
}

type RequestAnalysisRequest struct {
	DominantTypes []string `json:"dominantTypes"`
}

type RequestAnalysisResponse struct {
	CharacterAnalysis string   `json:"characterAnalysis"`
	ParentingTips     []string `json:"parentingTips"`
}

type StartSessionRequest struct {
	AgeBand string `json:"ageBand"`
}

type StartSessionResponse struct {
	SessionID     string `json:"sessionId"`
	AgeBand       string `json:"ageBand"`
	QuestionCount int    `json:"questionCount"`
}

// SetAnswerRequest clears the answer when Answer is null.
type SetAnswerRequest struct {
	SessionID  string `json:"sessionId"`
	QuestionID string `json:"questionId"`
	Answer     *bool  `json:"answer"`
}

type SetAnswerResponse struct {
	Answered      int `json:"answered"`
	QuestionCount int `json:"questionCount"`
}

type SubmitRequest struct {
	SessionID string `json:"sessionId"`
}

type SubmitResponse struct {
	ScoreResponse
	Analysis analysis.Snapshot `json:"analysis"`
}

type GetAnalysisRequest struct {
	SessionID string `json:"sessionId"`
}

type GetAnalysisResponse struct {
	Analysis analysis.Snapshot `json:"analysis"`
}

type RestartRequest struct {
	SessionID string `json:"sessionId"`
}

type RestartResponse struct {
	SessionID string `json:"sessionId"`
	AgeBand   string `json:"ageBand"`
}
