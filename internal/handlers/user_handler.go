package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirepilot/internal/apperr"
	"hirepilot/internal/models"
	"hirepilot/internal/repositories"
)

type UserHandler struct {
	userRepo repositories.UserRepository
}

func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// HandleCreate handles POST /users
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateUserRequest

	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "invalid request payload", err))
	}

	if err := validate.Struct(&req); err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, err.Error(), err))
	}

	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.userRepo.Create(user); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleList handles GET /users
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.userRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// HandleGet handles GET /users/:id
func (h *UserHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.CodeInvalidRequest, "invalid user ID format", err))
	}

	user, err := h.userRepo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}
