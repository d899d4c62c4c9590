package handlers

import (
	"errors"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EvaluationHandler struct {
	evaluationService *services.EvaluationService
}

func NewEvaluationHandler(evaluationService *services.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

func (h *EvaluationHandler) Create(c *fiber.Ctx) error {
	solutionID, err := uuid.Parse(c.Query("solution_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A valid solution_id is required",
		})
	}

	var req dto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Score < 1 || req.Score > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Score must be between 1 and 5",
		})
	}

	evaluation, err := h.evaluationService.Create(&req, solutionID)
	if err != nil {
		if errors.Is(err, services.ErrSolutionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Solution not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to record evaluation",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(evaluation)
}
