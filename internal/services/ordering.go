package services

import (
	"errors"

	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/gorm"
)

// OrderStep is the gap between appended siblings. The sparse spacing lets a
// client drop an item between two neighbours by assigning any value
// strictly between their orders, without renumbering the collection.
const OrderStep float64 = 65535

// NextOrder computes the order value for a new sibling appended at the end.
func NextOrder(maxOrder *float64) float64 {
	if maxOrder == nil {
		return OrderStep
	}
	return *maxOrder + OrderStep
}

// maxListOrder returns the highest order among the lists of a board, or nil
// when the board has none. The caller must hold the board row lock so two
// concurrent appends cannot both read the same stale maximum.
func maxListOrder(tx *gorm.DB, boardID uint64) (*float64, error) {
	var list models.BoardList
	err := tx.
		Where("board_id = ?", boardID).
		Order("sort_order DESC").
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list.SortOrder, nil
}

// maxCardOrder returns the highest order among the cards of a list, or nil
// when the list has none. The caller must hold the list row lock.
func maxCardOrder(tx *gorm.DB, boardListID uint64) (*float64, error) {
	var card models.BoardListCard
	err := tx.
		Where("board_list_id = ?", boardListID).
		Order("sort_order DESC").
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card.SortOrder, nil
}
