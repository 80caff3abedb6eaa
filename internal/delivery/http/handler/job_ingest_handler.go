package handler

import (
	"errors"

	"moonlight/internal/delivery/http/dto"
	"moonlight/internal/delivery/http/middleware"
	"moonlight/internal/pkg/response"
	"moonlight/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobIngestHandler struct {
	uc usecase.JobIngestUsecase
}

func NewJobIngestHandler(uc usecase.JobIngestUsecase) *JobIngestHandler {
	return &JobIngestHandler{uc: uc}
}

func (h *JobIngestHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/ingest", h.Ingest)
}

func (h *JobIngestHandler) Ingest(c fiber.Ctx) error {
	var req dto.IngestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	stored, err := h.uc.Ingest(c.Context(), req.ToInputs())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidJob) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.IngestResponse{Stored: stored})
}
