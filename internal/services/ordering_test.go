package services_test

import (
	"testing"

	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/testutil"
)

// TestNextOrder tests the append position computation
func TestNextOrder(t *testing.T) {
	if got := services.NextOrder(nil); got != 65535 {
		t.Errorf("Expected first order 65535, got %v", got)
	}

	max := 65535.0
	if got := services.NextOrder(&max); got != 131070 {
		t.Errorf("Expected second order 131070, got %v", got)
	}

	// Client-assigned midpoints still step from the current maximum
	max = 98302.5
	if got := services.NextOrder(&max); got != 163837.5 {
		t.Errorf("Expected order 163837.5, got %v", got)
	}
}

// TestListOrderSequence tests that appended lists get strictly increasing
// orders spaced by the step
func TestListOrderSequence(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, err := services.CreateBoard(db, user.ID, "project")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	expected := []float64{65535, 131070, 196605}
	for i, name := range []string{"todo", "doing", "done"} {
		list, err := services.CreateList(db, user.ID, board.ID, name)
		if err != nil {
			t.Fatalf("Failed to create list %q: %v", name, err)
		}
		if list.SortOrder != expected[i] {
			t.Errorf("List %d: expected order %v, got %v", i, expected[i], list.SortOrder)
		}
	}
}

// TestCardOrderSequence tests the same spacing for cards within a list
func TestCardOrderSequence(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, _ := services.CreateBoard(db, user.ID, "project")
	list, err := services.CreateList(db, user.ID, board.ID, "todo")
	if err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}

	expected := []float64{65535, 131070, 196605}
	for i := range expected {
		card, err := services.CreateCard(db, user.ID, services.CardInput{
			BoardListID: list.ID,
			Name:        "task",
		})
		if err != nil {
			t.Fatalf("Failed to create card %d: %v", i, err)
		}
		if card.SortOrder != expected[i] {
			t.Errorf("Card %d: expected order %v, got %v", i, expected[i], card.SortOrder)
		}
	}
}

// TestOrderSequencePerParent tests that order sequences are independent
// between sibling groups
func TestOrderSequencePerParent(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, _ := services.CreateBoard(db, user.ID, "project")
	other, _ := services.CreateBoard(db, user.ID, "archive")

	if _, err := services.CreateList(db, user.ID, board.ID, "todo"); err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}

	list, err := services.CreateList(db, user.ID, other.ID, "backlog")
	if err != nil {
		t.Fatalf("Failed to create list on second board: %v", err)
	}
	if list.SortOrder != 65535 {
		t.Errorf("Expected independent sequence starting at 65535, got %v", list.SortOrder)
	}
}
