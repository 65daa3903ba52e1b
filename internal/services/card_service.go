// card_service.go
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
	"time"

	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CardInput carries the fields for a new card.
type CardInput struct {
	BoardListID uint64
	Name        string
	Description string
	Meta        datatypes.JSON
}

// CardUpdate carries the mutable card fields. Nil means "not provided".
type CardUpdate struct {
	BoardListID *uint64
	Name        *string
	Description *string
	Order       *float64
	Meta        datatypes.JSON
}

// CardAttachmentView is the attachment join projected for API output, with
// the servable path computed from the storage prefix.
type CardAttachmentView struct {
	ID              uint64            `json:"id"`
	UserID          uint64            `json:"userId"`
	BoardListCardID uint64            `json:"boardListCardId"`
	AttachmentID    uint64            `json:"attachmentId"`
	IsCover         bool              `json:"isCover"`
	Path            string            `json:"path"`
	Detail          models.Attachment `json:"detail"`
}

// CardView is a card composed with its attachments, cover path, and
// comment count for board rendering.
type CardView struct {
	ID           uint64               `json:"id"`
	UserID       uint64               `json:"userId"`
	BoardListID  uint64               `json:"boardListId"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Order        float64              `json:"order"`
	Meta         datatypes.JSON       `json:"meta,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Attachments  []CardAttachmentView `json:"attachments"`
	CoverPath    string               `json:"coverPath"`
	CommentCount int                  `json:"commentCount"`
}

// CreateCard appends a card to the caller's list, same locking discipline
// as CreateList.
func CreateCard(db *gorm.DB, userID uint64, in CardInput) (*models.BoardListCard, error) {
	var card models.BoardListCard
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := getOwnedListForUpdate(tx, in.BoardListID, userID); err != nil {
			return err
		}
		maxOrder, err := maxCardOrder(tx, in.BoardListID)
		if err != nil {
			return err
		}
		card = models.BoardListCard{
			UserID:      userID,
			BoardListID: in.BoardListID,
			Name:        in.Name,
			Description: in.Description,
			Meta:        in.Meta,
			SortOrder:   NextOrder(maxOrder),
		}
		return tx.Create(&card).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetCards returns the cards of a caller-owned list in display order,
// composed with attachments, cover path, and comment count.
func GetCards(db *gorm.DB, userID, boardListID uint64, storagePrefix string) ([]CardView, error) {
	if _, err := GetOwnedList(db, boardListID, userID); err != nil {
		return nil, err
	}

	var cards []models.BoardListCard
	err := db.Where("board_list_id = ?", boardListID).
		Order("sort_order ASC, id ASC").
		Preload("Comments").
		Preload("Attachments").
		Preload("Attachments.Detail").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}

	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, buildCardView(card, storagePrefix))
	}
	return views, nil
}

// GetCard returns one card after validating ownership.
func GetCard(db *gorm.DB, id, userID uint64) (*models.BoardListCard, error) {
	return GetOwnedCard(db, id, userID)
}

// UpdateCard applies a partial update to a caller-owned card. Moving the
// card to another list validates ownership of the destination list.
func UpdateCard(db *gorm.DB, id, userID uint64, in CardUpdate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		card, err := GetOwnedCard(tx, id, userID)
		if err != nil {
			return err
		}
		if in.BoardListID != nil && *in.BoardListID != card.BoardListID {
			if _, err := GetOwnedList(tx, *in.BoardListID, userID); err != nil {
				return err
			}
			card.BoardListID = *in.BoardListID
		}
		if in.Name != nil {
			card.Name = *in.Name
		}
		if in.Description != nil {
			card.Description = *in.Description
		}
		if in.Order != nil {
			card.SortOrder = *in.Order
		}
		if in.Meta != nil {
			card.Meta = in.Meta
		}
		return tx.Save(card).Error
	})
}

// DeleteCard hard-deletes a card with its comments and attachment joins.
func DeleteCard(db *gorm.DB, id, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		card, err := GetOwnedCard(tx, id, userID)
		if err != nil {
			return err
		}
		return deleteCards(tx, []uint64{card.ID})
	})
}

// buildCardView composes the API projection of one card.
func buildCardView(card models.BoardListCard, storagePrefix string) CardView {
	view := CardView{
		ID:           card.ID,
		UserID:       card.UserID,
		BoardListID:  card.BoardListID,
		Name:         card.Name,
		Description:  card.Description,
		Order:        card.SortOrder,
		Meta:         card.Meta,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
		Attachments:  make([]CardAttachmentView, 0, len(card.Attachments)),
		CommentCount: len(card.Comments),
	}
	for _, attachment := range card.Attachments {
		av := buildAttachmentView(attachment, storagePrefix)
		if av.IsCover {
			view.CoverPath = av.Path
		}
		view.Attachments = append(view.Attachments, av)
	}
	return view
}

// buildAttachmentView computes the servable path of one attachment join.
func buildAttachmentView(join models.CardAttachment, storagePrefix string) CardAttachmentView {
	return CardAttachmentView{
		ID:              join.ID,
		UserID:          join.UserID,
		BoardListCardID: join.BoardListCardID,
		AttachmentID:    join.AttachmentID,
		IsCover:         join.IsCover,
		Path:            storagePrefix + "/" + join.Detail.Name,
		Detail:          join.Detail,
	}
}
