package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
	"hirepilot/internal/services"
)

type EmailHandler struct {
	emailService services.EmailService
}

func NewEmailHandler(emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
	}
}

// HandleGenerate handles POST /emails/generate
func (h *EmailHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateEmailRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "invalid request payload", err))
	}

	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, err.Error(), err))
	}

	candidate, email, err := h.emailService.GenerateEmail(c.Context(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.GenerateEmailResponse{
		CandidateID: candidate.ID.String(),
		Email:       email,
	})
}
