package models

import (
	"time"
)

// Comment is a user remark on a card.
type Comment struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64    `gorm:"not null;index:idx_comments_user_id" json:"userId"`
	BoardListCardID uint64    `gorm:"not null;index:idx_comments_board_list_card_id" json:"boardListCardId"`
	Content         string    `gorm:"size:2000;not null" json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OwnerID implements Owned
func (c Comment) OwnerID() uint64 { return c.UserID }

// TableName overrides the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
