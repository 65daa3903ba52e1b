// board_service.go
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

package services

import (
	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// BoardUpdate carries the mutable board fields. Nil means "not provided":
// the stored value is kept field by field.
type BoardUpdate struct {
	Name *string
}

// CreateBoard creates a board owned by the caller.
func CreateBoard(db *gorm.DB, userID uint64, name string) (*models.Board, error) {
	board := models.Board{
		UserID: userID,
		Name:   name,
	}
	if err := db.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// GetBoards returns every board owned by the caller.
func GetBoards(db *gorm.DB, userID uint64) ([]models.Board, error) {
	var boards []models.Board
	err := db.Clauses(hints.CommentBefore("select", "boardsdb:user_boards")).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard returns one board after validating ownership.
func GetBoard(db *gorm.DB, id, userID uint64) (*models.Board, error) {
	return GetOwnedBoard(db, id, userID)
}

// UpdateBoard applies a partial update to a caller-owned board.
func UpdateBoard(db *gorm.DB, id, userID uint64, in BoardUpdate) error {
	board, err := GetOwnedBoard(db, id, userID)
	if err != nil {
		return err
	}
	if in.Name != nil {
		board.Name = *in.Name
	}
	return db.Save(board).Error
}

// DeleteBoard hard-deletes a board and cascades to its lists, cards, and
// card children in one transaction. Attachment records are an independent
// lifecycle and are left in place.
func DeleteBoard(db *gorm.DB, id, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		board, err := GetOwnedBoard(tx, id, userID)
		if err != nil {
			return err
		}

		var listIDs []uint64
		if err := tx.Model(&models.BoardList{}).
			Where("board_id = ?", board.ID).
			Pluck("id", &listIDs).Error; err != nil {
			return err
		}

		if len(listIDs) > 0 {
			var cardIDs []uint64
			if err := tx.Model(&models.BoardListCard{}).
				Where("board_list_id IN ?", listIDs).
				Pluck("id", &cardIDs).Error; err != nil {
				return err
			}
			if err := deleteCards(tx, cardIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listIDs).Delete(&models.BoardList{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(board).Error
	})
}

// deleteCards removes cards along with their comments and attachment joins.
func deleteCards(tx *gorm.DB, cardIDs []uint64) error {
	if len(cardIDs) == 0 {
		return nil
	}
	if err := tx.Where("board_list_card_id IN ?", cardIDs).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("board_list_card_id IN ?", cardIDs).Delete(&models.CardAttachment{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", cardIDs).Delete(&models.BoardListCard{}).Error
}
