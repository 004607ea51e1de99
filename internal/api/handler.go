package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/api/middleware"
	"github.com/answersheet/gradebot/internal/executor"
)

type GradeRequest struct {
	EventID    string `json:"event_id"`
	AnswerText string `json:"answer_text"`
}

type GradeResponse struct {
	EventID string `json:"event_id"`
	Score   int    `json:"score"`
	Reason  string `json:"reason"`
}

type ExtractRequest struct {
	ImagePath string `json:"image_path"`
}

type ExtractResponse struct {
	Text string `json:"text"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	pipeline *executor.Pipeline
	logger   *zerolog.Logger
}

func NewHandler(pipeline *executor.Pipeline, logger *zerolog.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		logger:   logger,
	}
}

// POST /api/v1/grade
// Body: GradeRequest
// Returns: GradeResponse
func (h *Handler) Grade(req *restful.Request, resp *restful.Response) {
	var gradeRequest GradeRequest
	if err := req.ReadEntity(&gradeRequest); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", gradeRequest.EventID).
		Msg("start grading")

	ctx := req.Request.Context()
	result := h.pipeline.GradeText(ctx, gradeRequest.EventID, gradeRequest.AnswerText)

	if err := resp.WriteHeaderAndEntity(http.StatusOK, GradeResponse{
		EventID: gradeRequest.EventID,
		Score:   result.Score,
		Reason:  result.Reason,
	}); err != nil {
		h.logger.Error().Err(err).Msg("failed to write response")
	}
}

// POST /api/v1/extract
// Body: ExtractRequest (path to an image on the server host)
// Returns: ExtractResponse
func (h *Handler) Extract(req *restful.Request, resp *restful.Response) {
	var extractRequest ExtractRequest
	if err := req.ReadEntity(&extractRequest); err != nil {
		h.logger.Error().Err(err).Msg("failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(extractRequest.ImagePath) == "" {
		middleware.HandleError(resp, fmt.Errorf("image_path is required"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	outcome, err := h.pipeline.GradeImage(ctx, extractRequest.ImagePath)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadGateway)
		return
	}

	if err := resp.WriteHeaderAndEntity(http.StatusOK, ExtractResponse{Text: outcome.Text}); err != nil {
		h.logger.Error().Err(err).Msg("failed to write response")
	}
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	if err := resp.WriteHeaderAndEntity(http.StatusOK, healthResponse); err != nil {
		h.logger.Error().Err(err).Msg("failed to write response")
	}
}
