package services

import (
	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ListUpdate carries the mutable list fields. Nil means "not provided".
// An explicit zero order is adopted verbatim; absence keeps the stored
// order (see BoardUpdate for the merge policy).
type ListUpdate struct {
	BoardID *uint64
	Name    *string
	Order   *float64
}

// CreateList appends a list to the caller's board. The sibling maximum is
// read under lock inside the same transaction as the insert, so two
// concurrent appends cannot adopt the same order value.
func CreateList(db *gorm.DB, userID, boardID uint64, name string) (*models.BoardList, error) {
	var list models.BoardList
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := getOwnedBoardForUpdate(tx, boardID, userID); err != nil {
			return err
		}
		maxOrder, err := maxListOrder(tx, boardID)
		if err != nil {
			return err
		}
		list = models.BoardList{
			UserID:    userID,
			BoardID:   boardID,
			Name:      name,
			SortOrder: NextOrder(maxOrder),
		}
		return tx.Create(&list).Error
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetLists returns the lists of a caller-owned board in display order.
// Equal orders fall back to creation id so the ordering stays stable.
func GetLists(db *gorm.DB, userID, boardID uint64) ([]models.BoardList, error) {
	if _, err := GetOwnedBoard(db, boardID, userID); err != nil {
		return nil, err
	}
	var lists []models.BoardList
	err := db.Clauses(hints.CommentBefore("select", "boardsdb:board_lists")).
		Where("board_id = ?", boardID).
		Order("sort_order ASC, id ASC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// GetList returns one list after validating ownership.
func GetList(db *gorm.DB, id, userID uint64) (*models.BoardList, error) {
	return GetOwnedList(db, id, userID)
}

// UpdateList applies a partial update to a caller-owned list. Moving the
// list to another board validates ownership of the destination board; the
// requested order is adopted verbatim with no collision resolution.
func UpdateList(db *gorm.DB, id, userID uint64, in ListUpdate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		list, err := GetOwnedList(tx, id, userID)
		if err != nil {
			return err
		}
		if in.BoardID != nil && *in.BoardID != list.BoardID {
			if _, err := GetOwnedBoard(tx, *in.BoardID, userID); err != nil {
				return err
			}
			list.BoardID = *in.BoardID
		}
		if in.Name != nil {
			list.Name = *in.Name
		}
		if in.Order != nil {
			list.SortOrder = *in.Order
		}
		return tx.Save(list).Error
	})
}

// DeleteList hard-deletes a list and cascades to its cards and their
// children in one transaction.
func DeleteList(db *gorm.DB, id, userID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		list, err := GetOwnedList(tx, id, userID)
		if err != nil {
			return err
		}

		var cardIDs []uint64
		if err := tx.Model(&models.BoardListCard{}).
			Where("board_list_id = ?", list.ID).
			Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		if err := deleteCards(tx, cardIDs); err != nil {
			return err
		}

		return tx.Delete(list).Error
	})
}
