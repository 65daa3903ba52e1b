package services_test

import (
	"testing"

	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/testutil"
	"gorm.io/datatypes"
)

// TestUpdateCardPartial tests that omitted fields keep their stored values
func TestUpdateCardPartial(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, _ := services.CreateBoard(db, user.ID, "project")
	list, _ := services.CreateList(db, user.ID, board.ID, "todo")
	card, err := services.CreateCard(db, user.ID, services.CardInput{
		BoardListID: list.ID,
		Name:        "task",
		Description: "original",
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	desc := "updated"
	if err := services.UpdateCard(db, card.ID, user.ID, services.CardUpdate{Description: &desc}); err != nil {
		t.Fatalf("Failed to update card: %v", err)
	}

	got, err := services.GetCard(db, card.ID, user.ID)
	if err != nil {
		t.Fatalf("Failed to reload card: %v", err)
	}
	if got.Name != "task" {
		t.Errorf("Expected name unchanged, got %q", got.Name)
	}
	if got.Description != "updated" {
		t.Errorf("Expected description %q, got %q", "updated", got.Description)
	}
	if got.SortOrder != card.SortOrder {
		t.Errorf("Expected order %v unchanged, got %v", card.SortOrder, got.SortOrder)
	}
}

// TestUpdateCardExplicitZeroOrder tests that an explicit zero order is
// adopted
func TestUpdateCardExplicitZeroOrder(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	zero := 0.0
	if err := services.UpdateCard(db, card.ID, user.ID, services.CardUpdate{Order: &zero}); err != nil {
		t.Fatalf("Failed to update card order: %v", err)
	}

	got, _ := services.GetCard(db, card.ID, user.ID)
	if got.SortOrder != 0 {
		t.Errorf("Expected explicit zero order to be stored, got %v", got.SortOrder)
	}
}

// TestUpdateCardMoveBetweenLists tests moving a card to another owned list
func TestUpdateCardMoveBetweenLists(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	other := testutil.CreateUser(t, db, "bob")

	board, _ := services.CreateBoard(db, user.ID, "project")
	todo, _ := services.CreateList(db, user.ID, board.ID, "todo")
	done, _ := services.CreateList(db, user.ID, board.ID, "done")
	card, _ := services.CreateCard(db, user.ID, services.CardInput{BoardListID: todo.ID, Name: "task"})

	if err := services.UpdateCard(db, card.ID, user.ID, services.CardUpdate{BoardListID: &done.ID}); err != nil {
		t.Fatalf("Failed to move card: %v", err)
	}
	got, _ := services.GetCard(db, card.ID, user.ID)
	if got.BoardListID != done.ID {
		t.Errorf("Expected card on list %d, got %d", done.ID, got.BoardListID)
	}

	// A foreign destination list is refused
	theirBoard, _ := services.CreateBoard(db, other.ID, "theirs")
	theirList, _ := services.CreateList(db, other.ID, theirBoard.ID, "inbox")
	err := services.UpdateCard(db, card.ID, user.ID, services.CardUpdate{BoardListID: &theirList.ID})
	requireCustomError(t, err, 403)
}

// TestCardMeta tests round-tripping the freeform meta document
func TestCardMeta(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, _ := services.CreateBoard(db, user.ID, "project")
	list, _ := services.CreateList(db, user.ID, board.ID, "todo")
	card, err := services.CreateCard(db, user.ID, services.CardInput{
		BoardListID: list.ID,
		Name:        "task",
		Meta:        datatypes.JSON(`{"labels":["red","blue"]}`),
	})
	if err != nil {
		t.Fatalf("Failed to create card with meta: %v", err)
	}

	got, _ := services.GetCard(db, card.ID, user.ID)
	if string(got.Meta) != `{"labels":["red","blue"]}` {
		t.Errorf("Expected meta preserved, got %s", got.Meta)
	}
}

// TestGetCardsView tests the composed list view: ordering, comment count,
// attachments, and cover path
func TestGetCardsView(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")

	board, _ := services.CreateBoard(db, user.ID, "project")
	list, _ := services.CreateList(db, user.ID, board.ID, "todo")
	first, _ := services.CreateCard(db, user.ID, services.CardInput{BoardListID: list.ID, Name: "one"})
	second, _ := services.CreateCard(db, user.ID, services.CardInput{BoardListID: list.ID, Name: "two"})

	if _, err := services.AddComment(db, user.ID, first.ID, "note"); err != nil {
		t.Fatalf("Failed to add comment: %v", err)
	}
	if _, err := services.AddComment(db, user.ID, first.ID, "another"); err != nil {
		t.Fatalf("Failed to add comment: %v", err)
	}
	view := attachFixture(t, db, user.ID, first.ID, "photo")
	if err := services.SetCover(db, view.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover: %v", err)
	}

	cards, err := services.GetCards(db, user.ID, list.ID, "/public")
	if err != nil {
		t.Fatalf("Failed to load cards: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}
	if cards[0].ID != first.ID || cards[1].ID != second.ID {
		t.Errorf("Expected creation order %d,%d, got %d,%d",
			first.ID, second.ID, cards[0].ID, cards[1].ID)
	}
	if cards[0].CommentCount != 2 {
		t.Errorf("Expected 2 comments, got %d", cards[0].CommentCount)
	}
	if cards[0].CoverPath != "/public/stored-photo.png" {
		t.Errorf("Expected cover path, got %q", cards[0].CoverPath)
	}
	if len(cards[0].Attachments) != 1 || !cards[0].Attachments[0].IsCover {
		t.Errorf("Expected one covered attachment, got %+v", cards[0].Attachments)
	}
	if cards[1].CommentCount != 0 || cards[1].CoverPath != "" {
		t.Errorf("Expected bare second card, got count=%d cover=%q",
			cards[1].CommentCount, cards[1].CoverPath)
	}
}

// TestDeleteCardCascades tests comment and attachment-link cleanup
func TestDeleteCardCascades(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	if _, err := services.AddComment(db, user.ID, card.ID, "note"); err != nil {
		t.Fatalf("Failed to add comment: %v", err)
	}
	attachFixture(t, db, user.ID, card.ID, "photo")

	if err := services.DeleteCard(db, card.ID, user.ID); err != nil {
		t.Fatalf("Failed to delete card: %v", err)
	}

	_, err := services.GetCard(db, card.ID, user.ID)
	requireCustomError(t, err, 404)
}
