// board.go
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

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Owned is implemented by every entity carrying a denormalized owner id.
// The ownership validator relies on it to authorize any read or write.
type Owned interface {
	OwnerID() uint64
}

// Board is the top-level owned container for lists.
type Board struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_boards_user_id" json:"userId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardList is an ordered container of cards within a board. UserID is
// denormalized from the owning board so ownership checks are a single read.
type BoardList struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_board_lists_user_id" json:"userId"`
	BoardID   uint64    `gorm:"not null;index:idx_board_lists_board_id" json:"boardId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	SortOrder float64   `gorm:"not null" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardListCard is a work item within a list. Meta carries freeform custom
// fields as a JSON document.
type BoardListCard struct {
	ID          uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64           `gorm:"not null;index:idx_board_list_cards_user_id" json:"userId"`
	BoardListID uint64           `gorm:"not null;index:idx_board_list_cards_board_list_id" json:"boardListId"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	SortOrder   float64          `gorm:"not null" json:"order"`
	Meta        datatypes.JSON   `gorm:"type:json" json:"meta,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Comments    []Comment        `gorm:"foreignKey:BoardListCardID" json:"-"`
	Attachments []CardAttachment `gorm:"foreignKey:BoardListCardID" json:"-"`
}

// OwnerID implements Owned
func (b Board) OwnerID() uint64 { return b.UserID }

// OwnerID implements Owned
func (l BoardList) OwnerID() uint64 { return l.UserID }

// OwnerID implements Owned
func (c BoardListCard) OwnerID() uint64 { return c.UserID }

// TableName overrides the table name for Board
func (Board) TableName() string {
	return "boards"
}

// TableName overrides the table name for BoardList
func (BoardList) TableName() string {
	return "board_lists"
}

// TableName overrides the table name for BoardListCard
func (BoardListCard) TableName() string {
	return "board_list_cards"
}
