package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/validation"
	"gorm.io/gorm"
)

// BoardHandler handles board routes
type BoardHandler struct {
	DB *gorm.DB
}

// AddBoard handles POST /api/board
// @Summary Create a board
// @Tags Board
// @Accept json
// @Produce json
// @Param body body object true "name"
// @Success 201 {object} models.Board
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /board [post]
func (h *BoardHandler) AddBoard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}
	if violations := validation.CreateBoard(body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	board, err := services.CreateBoard(h.DB, identity.ID, body.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// GetBoards handles GET /api/board
// @Summary List the caller's boards
// @Tags Board
// @Produce json
// @Success 200 {array} models.Board
// @Router /board [get]
func (h *BoardHandler) GetBoards(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	boards, err := services.GetBoards(h.DB, identity.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(boards)
}

// GetBoard handles GET /api/board/:id
// @Summary Get one board
// @Tags Board
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} models.Board
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /board/{id} [get]
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	board, err := services.GetBoard(h.DB, id, identity.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(board)
}

// UpdateBoard handles PUT /api/board/:id
// @Summary Update a board
// @Description Omitted fields keep their stored values
// @Tags Board
// @Accept json
// @Param id path int true "Board ID"
// @Param body body object true "name"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /board/{id} [put]
func (h *BoardHandler) UpdateBoard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var body struct {
		Name *string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}
	if violations := validation.UpdateBoard(body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	if err := services.UpdateBoard(h.DB, id, identity.ID, services.BoardUpdate{Name: body.Name}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteBoard handles DELETE /api/board/:id
// @Summary Delete a board and its lists and cards
// @Tags Board
// @Param id path int true "Board ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /board/{id} [delete]
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteBoard(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
