// card.go
//
// A scalable, high performance drop-in replacement for the trello-board koa data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of boardsdb.
// boardsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boardsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boardsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/boardsdb/internal/config"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
	"github.com/localnerve/boardsdb/internal/validation"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CardHandler handles card routes plus the attachment sub-resources
// that hang off a card.
type CardHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// AddCard handles POST /api/card
// @Summary Create a card at the end of a list
// @Tags Card
// @Accept json
// @Produce json
// @Param body body object true "boardListId, name, description, meta"
// @Success 201 {object} models.BoardListCard
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /card [post]
func (h *CardHandler) AddCard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var body struct {
		BoardListID types.FlexUint64 `json:"boardListId"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Meta        datatypes.JSON   `json:"meta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}
	if violations := validation.CreateCard(body.BoardListID.Uint64(), body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	card, err := services.CreateCard(h.DB, identity.ID, services.CardInput{
		BoardListID: body.BoardListID.Uint64(),
		Name:        body.Name,
		Description: body.Description,
		Meta:        body.Meta,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// GetCards handles GET /api/card?boardListId=
// @Summary List the cards of a list in display order
// @Description Each card carries its attachments, cover path, and comment count
// @Tags Card
// @Produce json
// @Param boardListId query int true "List ID"
// @Success 200 {array} services.CardView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card [get]
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	boardListID, err := queryID(c, "boardListId")
	if err != nil {
		return err
	}

	cards, err := services.GetCards(h.DB, identity.ID, boardListID, h.Cfg.StoragePrefix)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cards)
}

// GetCard handles GET /api/card/:id
// @Summary Get one card
// @Tags Card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} models.BoardListCard
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/{id} [get]
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	card, err := services.GetCard(h.DB, id, identity.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(card)
}

// UpdateCard handles PUT /api/card/:id
// @Summary Update a card
// @Description Omitted fields keep their stored values; an explicit order value is adopted verbatim
// @Tags Card
// @Accept json
// @Param id path int true "Card ID"
// @Param body body object true "boardListId, name, description, order, meta"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/{id} [put]
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var body struct {
		BoardListID *types.FlexUint64 `json:"boardListId"`
		Name        *string           `json:"name"`
		Description *string           `json:"description"`
		Order       *float64          `json:"order"`
		Meta        datatypes.JSON    `json:"meta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return types.BadInput("Invalid request body", nil)
	}

	var boardListID *uint64
	if body.BoardListID != nil {
		v := body.BoardListID.Uint64()
		boardListID = &v
	}
	if violations := validation.UpdateCard(boardListID, body.Name); len(violations) > 0 {
		return types.BadInput("Validation failed", violations)
	}

	update := services.CardUpdate{
		BoardListID: boardListID,
		Name:        body.Name,
		Description: body.Description,
		Order:       body.Order,
		Meta:        body.Meta,
	}
	if err := services.UpdateCard(h.DB, id, identity.ID, update); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCard handles DELETE /api/card/:id
// @Summary Delete a card with its comments and attachment links
// @Tags Card
// @Param id path int true "Card ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/{id} [delete]
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteCard(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
