// owner.go
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
	"errors"
	"fmt"

	"github.com/localnerve/boardsdb/internal/models"
	"github.com/localnerve/boardsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// getOwned is the single authorization primitive: it fetches an entity by
// primary key and confirms the caller owns it. Missing entity raises
// NotFound, foreign owner raises Forbidden. Callers invoke it once per
// target and once per required ancestor; an already validated ancestor is
// never re-checked within the same request.
func getOwned[T models.Owned](tx *gorm.DB, id, userID uint64, what string) (*T, error) {
	var entity T
	if err := tx.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFound(fmt.Sprintf("The requested %s does not exist", what))
		}
		return nil, err
	}
	if entity.OwnerID() != userID {
		return nil, types.Forbidden(fmt.Sprintf("Access to this %s is denied", what))
	}
	return &entity, nil
}

// lockForUpdate applies a row lock on engines that support it. SQLite has
// no FOR UPDATE; its transaction writer lock covers the same window.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// GetOwnedBoard validates and returns the caller's board.
func GetOwnedBoard(tx *gorm.DB, id, userID uint64) (*models.Board, error) {
	return getOwned[models.Board](tx, id, userID, "board")
}

// GetOwnedList validates and returns the caller's board list.
func GetOwnedList(tx *gorm.DB, id, userID uint64) (*models.BoardList, error) {
	return getOwned[models.BoardList](tx, id, userID, "list")
}

// GetOwnedCard validates and returns the caller's card.
func GetOwnedCard(tx *gorm.DB, id, userID uint64) (*models.BoardListCard, error) {
	return getOwned[models.BoardListCard](tx, id, userID, "card")
}

// GetOwnedCardAttachment validates and returns the caller's card attachment.
func GetOwnedCardAttachment(tx *gorm.DB, id, userID uint64) (*models.CardAttachment, error) {
	return getOwned[models.CardAttachment](tx, id, userID, "attachment")
}

// getOwnedBoardForUpdate is GetOwnedBoard with the row locked for the
// remainder of the surrounding transaction. Concurrent list appends
// serialize on it.
func getOwnedBoardForUpdate(tx *gorm.DB, id, userID uint64) (*models.Board, error) {
	return getOwned[models.Board](lockForUpdate(tx), id, userID, "board")
}

// getOwnedListForUpdate locks the list row. Concurrent card appends
// serialize on it.
func getOwnedListForUpdate(tx *gorm.DB, id, userID uint64) (*models.BoardList, error) {
	return getOwned[models.BoardList](lockForUpdate(tx), id, userID, "list")
}

// getOwnedCardForUpdate locks the card row. Cover flips serialize on it,
// which is what keeps the single-cover invariant under concurrency.
func getOwnedCardForUpdate(tx *gorm.DB, id, userID uint64) (*models.BoardListCard, error) {
	return getOwned[models.BoardListCard](lockForUpdate(tx), id, userID, "card")
}

// getOwnedCardAttachmentForUpdate is GetOwnedCardAttachment with the row
// locked for the remainder of the surrounding transaction.
func getOwnedCardAttachmentForUpdate(tx *gorm.DB, id, userID uint64) (*models.CardAttachment, error) {
	return getOwned[models.CardAttachment](lockForUpdate(tx), id, userID, "attachment")
}
