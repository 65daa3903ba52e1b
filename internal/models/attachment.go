package models

import (
	"time"
)

// Attachment is a stored upload. Rows are immutable once written; the
// stored Name is an opaque filename under the configured storage directory.
// Attachment lifecycle is independent of the cards referencing it.
type Attachment struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"not null;index:idx_attachments_user_id" json:"userId"`
	OriginName string    `gorm:"size:255;not null" json:"originName"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Type       string    `gorm:"size:255" json:"type"`
	Size       int64     `gorm:"not null" json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CardAttachment joins a card to an attachment. At most one row per card
// carries IsCover == true; the cover service maintains that invariant.
type CardAttachment struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64     `gorm:"not null;index:idx_card_attachments_user_id" json:"userId"`
	BoardListCardID uint64     `gorm:"not null;index:idx_card_attachments_board_list_card_id" json:"boardListCardId"`
	AttachmentID    uint64     `gorm:"not null;index:idx_card_attachments_attachment_id" json:"attachmentId"`
	IsCover         bool       `gorm:"not null;default:false" json:"isCover"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	Detail          Attachment `gorm:"foreignKey:AttachmentID" json:"detail"`
}

// OwnerID implements Owned
func (a Attachment) OwnerID() uint64 { return a.UserID }

// OwnerID implements Owned
func (c CardAttachment) OwnerID() uint64 { return c.UserID }

// TableName overrides the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}

// TableName overrides the table name for CardAttachment
func (CardAttachment) TableName() string {
	return "card_attachments"
}
