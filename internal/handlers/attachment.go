package handlers

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/types"
)

// AddAttachment handles POST /api/card/attachment
// @Summary Upload an attachment to a card
// @Description Multipart upload: "boardListCardId" form value plus an "attachment" file part
// @Tags Card
// @Accept multipart/form-data
// @Produce json
// @Param boardListCardId formData int true "Card ID"
// @Param attachment formData file true "File to attach"
// @Success 201 {object} services.CardAttachmentView
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /card/attachment [post]
func (h *CardHandler) AddAttachment(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	cardID, err := strconv.ParseUint(c.FormValue("boardListCardId"), 10, 64)
	if err != nil || cardID == 0 {
		return types.BadInput("boardListCardId must be a positive number", nil)
	}

	fileHeader, err := c.FormFile("attachment")
	if err != nil {
		return types.MissingAttachment()
	}

	// Stored name is opaque; the origin name only survives in the record.
	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	storedPath := filepath.Join(h.Cfg.StorageDir, storedName)
	if err := c.SaveFile(fileHeader, storedPath); err != nil {
		return err
	}

	view, err := services.AddCardAttachment(h.DB, identity.ID, cardID, services.UploadedFile{
		OriginName: fileHeader.Filename,
		Name:       storedName,
		Type:       fileHeader.Header.Get(fiber.HeaderContentType),
		Size:       fileHeader.Size,
	}, h.Cfg.StoragePrefix)
	if err != nil {
		// The record never existed, so the stored file must not either.
		_ = os.Remove(storedPath)
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// DeleteAttachment handles DELETE /api/card/attachment/:id
// @Summary Detach an attachment from its card
// @Description Removes the card link only; the stored file and attachment record remain
// @Tags Card
// @Param id path int true "CardAttachment ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/attachment/{id} [delete]
func (h *CardHandler) DeleteAttachment(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.DeleteCardAttachment(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetCover handles PUT /api/card/attachment/cover/:id
// @Summary Mark an attachment as the card cover
// @Description Clears any previous cover on the same card in the same transaction
// @Tags Card
// @Param id path int true "CardAttachment ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/attachment/cover/{id} [put]
func (h *CardHandler) SetCover(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.SetCover(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCover handles DELETE /api/card/attachment/cover/:id
// @Summary Remove the cover mark from an attachment
// @Tags Card
// @Param id path int true "CardAttachment ID"
// @Success 204
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /card/attachment/cover/{id} [delete]
func (h *CardHandler) DeleteCover(c *fiber.Ctx) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := services.UnsetCover(h.DB, id, identity.ID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
