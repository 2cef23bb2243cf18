package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/scry-quiz/internal/api/shared"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// StudyHandler handles learn-mode and test-mode HTTP requests
type StudyHandler struct {
	studyService service.StudyService
	logger       *slog.Logger
}

// NewStudyHandler creates a new StudyHandler
func NewStudyHandler(studyService service.StudyService, logger *slog.Logger) *StudyHandler {
	if studyService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studyService cannot be nil for StudyHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyHandler")
	}

	return &StudyHandler{
		studyService: studyService,
		logger:       logger.With(slog.String("component", "study_handler")),
	}
}

// Routes registers the study endpoints on r.
func (h *StudyHandler) Routes(r chi.Router) {
	r.Post("/learn/sessions", h.StartLearnSession)
	r.Post("/learn/answers", h.CheckLearnAnswer)
	r.Post("/tests", h.CreateTest)
	r.Post("/tests/answers", h.CheckTestAnswer)
	r.Post("/tests/grade", h.GradeTest)
}

// StartLearnSession handles POST /learn/sessions requests.
// It builds one multiple-choice question per submitted card.
func (h *StudyHandler) StartLearnSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LearnSessionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.studyService.StartLearnSession(r.Context(), service.LearnSessionRequest{
		Cards: cardsToDomain(req.Cards),
		Seed:  req.Seed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start learn session")
		return
	}

	log.Debug("learn session started",
		slog.Int("question_count", len(session.Questions)),
		slog.Uint64("seed", session.Seed))

	shared.RespondWithJSON(w, r, http.StatusOK, LearnSessionResponse{
		Seed:      session.Seed,
		Questions: session.Questions,
	})
}

// CheckLearnAnswer handles POST /learn/answers requests.
func (h *StudyHandler) CheckLearnAnswer(w http.ResponseWriter, r *http.Request) {
	var req LearnAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.studyService.CheckLearnAnswer(r.Context(), *req.Question, *req.SelectedIndex)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CreateTest handles POST /tests requests.
// Config fields the client omits keep the server defaults.
func (h *StudyHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTestRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	cfg := req.Config.Apply(h.studyService.DefaultTestConfig())

	session, err := h.studyService.StartTest(r.Context(), service.TestRequest{
		Cards:  cardsToDomain(req.Cards),
		Config: &cfg,
		Seed:   req.Seed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create test")
		return
	}

	warnings := session.Warnings
	if warnings == nil {
		warnings = []domain.Warning{}
	}

	log.Debug("test created",
		slog.String("test_id", session.ID.String()),
		slog.Int("question_count", len(session.Questions)),
		slog.Int("warning_count", len(warnings)))

	shared.RespondWithJSON(w, r, http.StatusCreated, TestSessionResponse{
		ID:        session.ID,
		Seed:      session.Seed,
		Config:    session.Config,
		Questions: questionsToPayload(session.Questions),
		Warnings:  warnings,
	})
}

// CheckTestAnswer handles POST /tests/answers requests.
func (h *StudyHandler) CheckTestAnswer(w http.ResponseWriter, r *http.Request) {
	var req CheckTestAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	question, err := req.Question.ToDomain()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	correct, err := h.studyService.CheckTestAnswer(r.Context(), question, req.SmartGrading)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to check answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckTestAnswerResponse{Correct: correct})
}

// GradeTest handles POST /tests/grade requests.
// Each returned question carries is_correct.
func (h *StudyHandler) GradeTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GradeTestRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	questions, err := payloadsToDomain(req.Questions)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := h.studyService.GradeTest(r.Context(), service.GradeRequest{
		Questions:    questions,
		SmartGrading: req.SmartGrading,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to grade test")
		return
	}

	graded := questionsToPayload(result.Questions)
	for i := range graded {
		if i < len(result.Correct) {
			correct := result.Correct[i]
			graded[i].IsCorrect = &correct
		}
	}

	log.Debug("test graded",
		slog.Int("total_questions", result.TotalQuestions),
		slog.Int("score", result.Score))

	shared.RespondWithJSON(w, r, http.StatusOK, GradeTestResponse{
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		Score:          result.Score,
		Questions:      graded,
	})
}

// decodeAndValidate decodes the JSON body into req and validates it, writing
// a 400 response and returning false on failure.
func (h *StudyHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := shared.DecodeJSON(r, req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		if errors.Is(err, shared.ErrEmptyBody) {
			HandleAPIError(w, r, err, "")
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		HandleValidationError(w, r, err)
		return false
	}

	return true
}
