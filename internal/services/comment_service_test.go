package services_test

import (
	"fmt"
	"testing"

	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/testutil"
)

// TestPaginate tests the page clamping arithmetic
func TestPaginate(t *testing.T) {
	cases := []struct {
		total                     int64
		size, requested           int
		wantPage, wantPages, wantOffset int
	}{
		{12, 5, 10, 3, 3, 10},
		{12, 5, 1, 1, 3, 0},
		{12, 5, 2, 2, 3, 5},
		{12, 5, 0, 1, 3, 0},
		{12, 5, -4, 1, 3, 0},
		{0, 5, 1, 1, 0, 0},
		{0, 5, 10, 1, 0, 0},
		{5, 5, 2, 1, 1, 0},
	}

	for _, tc := range cases {
		page, pages, offset := services.Paginate(tc.total, tc.size, tc.requested)
		if page != tc.wantPage || pages != tc.wantPages || offset != tc.wantOffset {
			t.Errorf("Paginate(%d, %d, %d) = (%d, %d, %d), expected (%d, %d, %d)",
				tc.total, tc.size, tc.requested,
				page, pages, offset,
				tc.wantPage, tc.wantPages, tc.wantOffset)
		}
	}
}

// TestGetCommentsPage tests the paged listing with the commenting user
// projection, newest first
func TestGetCommentsPage(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	for i := 1; i <= 12; i++ {
		if _, err := services.AddComment(db, user.ID, card.ID, fmt.Sprintf("note %d", i)); err != nil {
			t.Fatalf("Failed to add comment %d: %v", i, err)
		}
	}

	page, err := services.GetComments(db, user.ID, card.ID, 1)
	if err != nil {
		t.Fatalf("Failed to get comments: %v", err)
	}

	if page.Count != 12 || page.Pages != 3 || page.Page != 1 || page.Limit != 5 {
		t.Errorf("Expected count=12 pages=3 page=1 limit=5, got count=%d pages=%d page=%d limit=%d",
			page.Count, page.Pages, page.Page, page.Limit)
	}
	if len(page.Rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(page.Rows))
	}
	// Newest first
	if page.Rows[0].Content != "note 12" || page.Rows[4].Content != "note 8" {
		t.Errorf("Expected newest-first rows, got %q .. %q", page.Rows[0].Content, page.Rows[4].Content)
	}
	if page.Rows[0].User.Name != "alice" || page.Rows[0].User.ID != user.ID {
		t.Errorf("Expected user projection {%d alice}, got {%d %s}",
			user.ID, page.Rows[0].User.ID, page.Rows[0].User.Name)
	}
}

// TestGetCommentsClampsPastLastPage tests clamping an out-of-range page
func TestGetCommentsClampsPastLastPage(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	for i := 1; i <= 12; i++ {
		if _, err := services.AddComment(db, user.ID, card.ID, fmt.Sprintf("note %d", i)); err != nil {
			t.Fatalf("Failed to add comment %d: %v", i, err)
		}
	}

	page, err := services.GetComments(db, user.ID, card.ID, 10)
	if err != nil {
		t.Fatalf("Failed to get comments: %v", err)
	}
	if page.Page != 3 || page.Pages != 3 {
		t.Errorf("Expected clamp to page 3 of 3, got page %d of %d", page.Page, page.Pages)
	}
	if len(page.Rows) != 2 {
		t.Errorf("Expected 2 rows on the last page, got %d", len(page.Rows))
	}
}

// TestGetCommentsEmpty tests the empty-card shape
func TestGetCommentsEmpty(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	page, err := services.GetComments(db, user.ID, card.ID, 1)
	if err != nil {
		t.Fatalf("Failed to get comments: %v", err)
	}
	if page.Count != 0 || page.Pages != 0 || page.Page != 1 {
		t.Errorf("Expected count=0 pages=0 page=1, got count=%d pages=%d page=%d",
			page.Count, page.Pages, page.Page)
	}
	if len(page.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(page.Rows))
	}

	// An out-of-range request on an empty card still lands on page 1
	page, err = services.GetComments(db, user.ID, card.ID, 10)
	if err != nil {
		t.Fatalf("Failed to get comments: %v", err)
	}
	if page.Page != 1 || page.Pages != 0 {
		t.Errorf("Expected page 1 of 0, got page %d of %d", page.Page, page.Pages)
	}
}

// TestAddCommentValidatesCard tests ownership on the target card
func TestAddCommentValidatesCard(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	intruder := testutil.CreateUser(t, db, "bob")
	card := createCardFixture(t, db, user.ID)

	_, err := services.AddComment(db, intruder.ID, card.ID, "sneaky")
	requireCustomError(t, err, 403)

	_, err = services.AddComment(db, user.ID, 54321, "lost")
	requireCustomError(t, err, 404)
}
