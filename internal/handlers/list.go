package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/validation"
	"gorm.io/gorm"
)

// ListHandler handles board list routes
type ListHandler struct {
	DB *gorm.DB
}

// AddList handles POST /api/list
// @Summary Create a list at the end of a board
// @Tags List
// @Accept json
// @Produce json
// @Param body body object true "boardId, name"
// @Success 201 {object} models.BoardList
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /list [post]
func (h *ListHandler) AddList(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var body struct {
		BoardID types.FlexUint64 `json:"boardId"`
		Name    string           `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}
	if violations := validation.CreateList(body.BoardID.Uint64(), body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	list, err := services.CreateList(h.DB, identity.ID, body.BoardID.Uint64(), body.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// GetLists handles GET /api/list?boardId=
// @Summary List the lists of a board in display order
// @Tags List
// @Produce json
// @Param boardId query int true "Board ID"
// @Success 200 {array} models.BoardList
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /list [get]
func (h *ListHandler) GetLists(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	boardID, err := queryID(c, "boardId")
	if err != nil {
		return err
	}

	lists, err := services.GetLists(h.DB, identity.ID, boardID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(lists)
}

// GetList handles GET /api/list/:id
// @Summary Get one list
// @Tags List
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} models.BoardList
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /list/{id} [get]
func (h *ListHandler) GetList(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	list, err := services.GetList(h.DB, id, identity.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// UpdateList handles PUT /api/list/:id
// @Summary Update a list
// @Description Omitted fields keep their stored values; an explicit order value is adopted verbatim
// @Tags List
// @Accept json
// @Param id path int true "List ID"
// @Param body body object true "boardId, name, order"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /list/{id} [put]
func (h *ListHandler) UpdateList(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var body struct {
		BoardID *types.FlexUint64 `json:"boardId"`
		Name    *string           `json:"name"`
		Order   *float64          `json:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}

	var boardID *uint64
	if body.BoardID != nil {
		v := body.BoardID.Uint64()
		boardID = &v
	}
	if violations := validation.UpdateList(boardID, body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	update := services.ListUpdate{
		BoardID: boardID,
		Name:    body.Name,
		Order:   body.Order,
	}
	if err := services.UpdateList(h.DB, id, identity.ID, update); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteList handles DELETE /api/list/:id
// @Summary Delete a list and its cards
// @Tags List
// @Param id path int true "List ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /list/{id} [delete]
func (h *ListHandler) DeleteList(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteList(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
