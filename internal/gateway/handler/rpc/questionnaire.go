package rpc

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"neurotype/internal/analysis"
	"neurotype/internal/questionnaire"
	"neurotype/internal/scoring"
	"neurotype/internal/session"
)

const ServiceName = "neurotype.v1.QuestionnaireService"

const (
	GetCatalogProcedure      = "/" + ServiceName + "/GetCatalog"
	ScoreProcedure           = "/" + ServiceName + "/Score"
	RequestAnalysisProcedure = "/" + ServiceName + "/RequestAnalysis"
	StartSessionProcedure    = "/" + ServiceName + "/StartSession"
	SetAnswerProcedure       = "/" + ServiceName + "/SetAnswer"
	SubmitProcedure          = "/" + ServiceName + "/Submit"
	GetAnalysisProcedure     = "/" + ServiceName + "/GetAnalysis"
	RestartProcedure         = "/" + ServiceName + "/Restart"
)

// Analyzer is the stateless analysis entry point.
type Analyzer interface {
	Analyze(ctx context.Context, titles []string) (analysis.Result, error)
}

// QuestionnaireHandler serves the questionnaire procedures.
type QuestionnaireHandler struct {
	analyzer Analyzer
	sessions *session.Manager
}

func NewQuestionnaireHandler(analyzer Analyzer, sessions *session.Manager) *QuestionnaireHandler {
	return &QuestionnaireHandler{analyzer: analyzer, sessions: sessions}
}

// Routes returns every procedure path with its handler, for mounting on a mux.
func (h *QuestionnaireHandler) Routes(opts ...connect.HandlerOption) map[string]http.Handler {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	return map[string]http.Handler{
		GetCatalogProcedure:      connect.NewUnaryHandler(GetCatalogProcedure, h.GetCatalog, opts...),
		ScoreProcedure:           connect.NewUnaryHandler(ScoreProcedure, h.Score, opts...),
		RequestAnalysisProcedure: connect.NewUnaryHandler(RequestAnalysisProcedure, h.RequestAnalysis, opts...),
		StartSessionProcedure:    connect.NewUnaryHandler(StartSessionProcedure, h.StartSession, opts...),
		SetAnswerProcedure:       connect.NewUnaryHandler(SetAnswerProcedure, h.SetAnswer, opts...),
		SubmitProcedure:          connect.NewUnaryHandler(SubmitProcedure, h.Submit, opts...),
		GetAnalysisProcedure:     connect.NewUnaryHandler(GetAnalysisProcedure, h.GetAnalysis, opts...),
		RestartProcedure:         connect.NewUnaryHandler(RestartProcedure, h.Restart, opts...),
	}
}

func (h *QuestionnaireHandler) GetCatalog(_ context.Context, req *connect.Request[GetCatalogRequest]) (*connect.Response[GetCatalogResponse], error) {
	band, err := questionnaire.ParseAgeBand(req.Msg.AgeBand)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(toCatalogResponse(questionnaire.ForAgeBand(band))), nil
}

func (h *QuestionnaireHandler) Score(_ context.Context, req *connect.Request[ScoreRequest]) (*connect.Response[ScoreResponse], error) {
	band, err := questionnaire.ParseAgeBand(req.Msg.AgeBand)
	if err != nil {
		return nil, toConnectError(err)
	}
	catalog := questionnaire.ForAgeBand(band)
	res := scoring.Score(catalog, toAnswers(req.Msg.Answers))
	out := toScoreResponse(catalog, res)
	return connect.NewResponse(&out), nil
}

func (h *QuestionnaireHandler) RequestAnalysis(ctx context.Context, req *connect.Request[RequestAnalysisRequest]) (*connect.Response[RequestAnalysisResponse], error) {
	res, err := h.analyzer.Analyze(ctx, req.Msg.DominantTypes)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RequestAnalysisResponse{
		CharacterAnalysis: res.CharacterAnalysis,
		ParentingTips:     res.ParentingTips,
	}), nil
}

func (h *QuestionnaireHandler) StartSession(_ context.Context, req *connect.Request[StartSessionRequest]) (*connect.Response[StartSessionResponse], error) {
	band, err := questionnaire.ParseAgeBand(req.Msg.AgeBand)
	if err != nil {
		return nil, toConnectError(err)
	}
	v, err := h.sessions.Start(band)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&StartSessionResponse{
		SessionID:     v.ID,
		AgeBand:       string(v.AgeBand),
		QuestionCount: v.Questions,
	}), nil
}

func (h *QuestionnaireHandler) SetAnswer(_ context.Context, req *connect.Request[SetAnswerRequest]) (*connect.Response[SetAnswerResponse], error) {
	qid := strings.TrimSpace(req.Msg.QuestionID)
	if qid == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("questionId is required"))
	}
	if err := h.sessions.SetAnswer(req.Msg.SessionID, qid, req.Msg.Answer); err != nil {
		return nil, toConnectError(err)
	}
	v, err := h.sessions.Get(req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SetAnswerResponse{Answered: v.Answered, QuestionCount: v.Questions}), nil
}

func (h *QuestionnaireHandler) Submit(_ context.Context, req *connect.Request[SubmitRequest]) (*connect.Response[SubmitResponse], error) {
	catalog, err := h.sessions.Catalog(req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	res, snap, err := h.sessions.Submit(req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SubmitResponse{
		ScoreResponse: toScoreResponse(catalog, res),
		Analysis:      snap,
	}), nil
}

func (h *QuestionnaireHandler) GetAnalysis(_ context.Context, req *connect.Request[GetAnalysisRequest]) (*connect.Response[GetAnalysisResponse], error) {
	snap, err := h.sessions.Analysis(req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetAnalysisResponse{Analysis: snap}), nil
}

func (h *QuestionnaireHandler) Restart(_ context.Context, req *connect.Request[RestartRequest]) (*connect.Response[RestartResponse], error) {
	v, err := h.sessions.Restart(req.Msg.SessionID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RestartResponse{SessionID: v.ID, AgeBand: string(v.AgeBand)}), nil
}
