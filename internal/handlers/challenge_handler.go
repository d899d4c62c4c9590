package handlers

import (
	"errors"

	"github.com/devforge/devforge-backend/internal/dto"
	"github.com/devforge/devforge-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// List serves the public catalog: approved challenges only, optionally
// narrowed by seniority tier (?tier=PLENO, case-insensitive).
func (h *ChallengeHandler) List(c *fiber.Ctx) error {
	challenges, err := h.challengeService.ListApproved(c.Context(), c.Query("tier"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list challenges",
		})
	}
	return c.JSON(fiber.Map{"error": false, "challenges": challenges})
}

func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Title == "" || req.Context == "" || req.FunctionalRequirements == "" ||
		req.TechnicalRequirements == "" || req.SeniorityTier == "" || req.Stack == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "All challenge fields are required",
		})
	}

	challenge, err := h.challengeService.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrContextTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create challenge",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(challenge)
}
