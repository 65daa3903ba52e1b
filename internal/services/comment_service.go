package services

import (
	"math"
	"time"

	"github.com/localnerve/boardsdb/internal/models"
	"gorm.io/gorm"
)

// CommentPageSize is the fixed page size for comment listings.
const CommentPageSize = 5

// CommentUser is the projection of the commenting user joined into each row.
type CommentUser struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// CommentItem is one comment row in a page.
type CommentItem struct {
	ID              uint64      `json:"id"`
	UserID          uint64      `json:"userId"`
	BoardListCardID uint64      `json:"boardListCardId"`
	Content         string      `json:"content"`
	CreatedAt       time.Time   `json:"createdAt"`
	User            CommentUser `json:"user"`
}

// CommentPage is a page of comments with its bounds.
type CommentPage struct {
	Limit int           `json:"limit"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Count int64         `json:"count"`
	Rows  []CommentItem `json:"rows"`
}

// Paginate computes page bounds for a fixed page size and clamps an
// out-of-range request. A zero total yields pages 0 with the page clamped
// to 1 and an empty result set.
func Paginate(totalCount int64, pageSize, requestedPage int) (page, pages, offset int) {
	pages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	page = requestedPage
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	offset = (page - 1) * pageSize
	return page, pages, offset
}

// AddComment creates a comment on a caller-owned card.
func AddComment(db *gorm.DB, userID, cardID uint64, content string) (*models.Comment, error) {
	if _, err := GetOwnedCard(db, cardID, userID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		UserID:          userID,
		BoardListCardID: cardID,
		Content:         content,
	}
	if err := db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetComments returns one page of a card's comments, most recent first,
// each joined with the commenting user's id and display name.
func GetComments(db *gorm.DB, userID, cardID uint64, requestedPage int) (*CommentPage, error) {
	if _, err := GetOwnedCard(db, cardID, userID); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&models.Comment{}).
		Where("board_list_card_id = ?", cardID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	page, pages, offset := Paginate(count, CommentPageSize, requestedPage)

	result := &CommentPage{
		Limit: CommentPageSize,
		Page:  page,
		Pages: pages,
		Count: count,
		Rows:  []CommentItem{},
	}
	if count == 0 {
		return result, nil
	}

	var rows []struct {
		models.Comment
		UserName string
	}
	err := db.Table("comments").
		Select("comments.*, users.name AS user_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.board_list_card_id = ?", cardID).
		Order("comments.id DESC").
		Limit(CommentPageSize).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result.Rows = append(result.Rows, CommentItem{
			ID:              row.ID,
			UserID:          row.UserID,
			BoardListCardID: row.BoardListCardID,
			Content:         row.Content,
			CreatedAt:       row.CreatedAt,
			User: CommentUser{
				ID:   row.UserID,
				Name: row.UserName,
			},
		})
	}
	return result, nil
}
