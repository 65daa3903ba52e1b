package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/config"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/validation"
	"gorm.io/gorm"
)

// UserHandler handles registration and login
type UserHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Register handles POST /api/user/register
// @Summary Register a new user
// @Description Create a user account with a unique name
// @Tags User
// @Accept json
// @Produce json
// @Param body body object true "name, password, rePassword"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var body struct {
		Name       string `json:"name"`
		Password   string `json:"password"`
		RePassword string `json:"rePassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}

	if violations := validation.Register(body.Name, body.Password, body.RePassword); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	user, err := services.Register(h.DB, body.Name, body.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":        user.ID,
		"name":      user.Name,
		"createdAt": user.CreatedAt,
	})
}

// Login handles POST /api/user/login
// @Summary Log in
// @Description Check the credential and return a bearer token in the Authorization response header
// @Tags User
// @Accept json
// @Produce json
// @Param body body object true "name, password"
// @Success 200 {object} types.Identity
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /user/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}

	if violations := validation.Login(body.Name, body.Password); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	identity, token, err := services.Login(h.DB, h.Cfg.JWTSecret, body.Name, body.Password)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderAuthorization, token)
	return c.Status(fiber.StatusOK).JSON(identity)
}
