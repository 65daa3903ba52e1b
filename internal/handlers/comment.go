package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/validation"
	"gorm.io/gorm"
)

// CommentHandler handles card comment routes
type CommentHandler struct {
	DB *gorm.DB
}

// AddComment handles POST /api/comment
// @Summary Comment on a card
// @Tags Comment
// @Accept json
// @Produce json
// @Param body body object true "boardListCardId, content"
// @Success 201 {object} models.Comment
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /comment [post]
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var body struct {
		BoardListCardID types.FlexUint64 `json:"boardListCardId"`
		Content         string           `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}
	if violations := validation.CreateComment(body.BoardListCardID.Uint64(), body.Content); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	comment, err := services.AddComment(h.DB, identity.ID, body.BoardListCardID.Uint64(), body.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/comment?boardListCardId=&page=
// @Summary Page through a card's comments, newest first
// @Tags Comment
// @Produce json
// @Param boardListCardId query int true "Card ID"
// @Param page query int false "Page number, clamped to the valid range"
// @Success 200 {object} services.CommentPage
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /comment [get]
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	cardID, err := queryID(c, "boardListCardId")
	if err != nil {
		return err
	}

	page, err := services.GetComments(h.DB, identity.ID, cardID, c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}
