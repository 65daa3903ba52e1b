package services

import (
	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/gorm"
)

// UploadedFile describes a stored upload: the client-supplied origin name
// and the opaque stored filename under the storage directory.
type UploadedFile struct {
	OriginName string
	Name       string
	Type       string
	Size       int64
}

// AddCardAttachment records an upload against a caller-owned card: the
// immutable Attachment row first, then the CardAttachment join referencing
// it, both in one transaction.
func AddCardAttachment(db *gorm.DB, userID, cardID uint64, file UploadedFile, storagePrefix string) (*CardAttachmentView, error) {
	var view CardAttachmentView
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetOwnedCard(tx, cardID, userID); err != nil {
			return err
		}

		attachment := models.Attachment{
			UserID:     userID,
			OriginName: file.OriginName,
			Name:       file.Name,
			Type:       file.Type,
			Size:       file.Size,
		}
		if err := tx.Create(&attachment).Error; err != nil {
			return err
		}

		join := models.CardAttachment{
			UserID:          userID,
			BoardListCardID: cardID,
			AttachmentID:    attachment.ID,
		}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}

		join.Detail = attachment
		view = buildAttachmentView(join, storagePrefix)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// DeleteCardAttachment removes the join row only. The underlying
// Attachment record and stored file have an independent lifecycle.
func DeleteCardAttachment(db *gorm.DB, id, userID uint64) error {
	join, err := GetOwnedCardAttachment(db, id, userID)
	if err != nil {
		return err
	}
	return db.Delete(join).Error
}

// SetCover marks one attachment as the card cover. The clear and the set
// run in a single transaction holding the parent card's row lock, so
// concurrent calls for different attachments on the same card serialize
// and cannot leave two covers behind. Repeating the call is a no-op
// beyond the first.
func SetCover(db *gorm.DB, id, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		join, err := GetOwnedCardAttachment(tx, id, userID)
		if err != nil {
			return err
		}
		if _, err := getOwnedCardForUpdate(tx, join.BoardListCardID, userID); err != nil {
			return err
		}
		if err := tx.Model(&models.CardAttachment{}).
			Where("board_list_card_id = ?", join.BoardListCardID).
			Update("is_cover", false).Error; err != nil {
			return err
		}
		return tx.Model(join).Update("is_cover", true).Error
	})
}

// UnsetCover clears the cover mark on one attachment. No clearing pass is
// needed: at most one row can be true.
func UnsetCover(db *gorm.DB, id, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		join, err := getOwnedCardAttachmentForUpdate(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Model(join).Update("is_cover", false).Error
	})
}
