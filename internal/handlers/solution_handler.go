package handlers

import (
	"errors"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SolutionHandler struct {
	solutionService *services.SolutionService
}

func NewSolutionHandler(solutionService *services.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

func (h *SolutionHandler) Create(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Query("challenge_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A valid challenge_id is required",
		})
	}

	var req dto.CreateSolutionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	solution, err := h.solutionService.Create(&req, challengeID)
	if err != nil {
		if errors.Is(err, services.ErrChallengeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Challenge not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit solution",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(solution)
}

func (h *SolutionHandler) ListByChallenge(c *fiber.Ctx) error {
	challengeID, err := uuid.Parse(c.Query("challenge_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A valid challenge_id is required",
		})
	}

	solutions, err := h.solutionService.ListByChallenge(challengeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list solutions",
		})
	}
	return c.JSON(fiber.Map{"error": false, "solutions": solutions})
}
