package services_test

import (
	"testing"

	"github.com/localnerve/boardsdb/internal/models"
	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/testutil"
	"gorm.io/gorm"
)

func createCardFixture(t *testing.T, db *gorm.DB, userID uint64) *models.BoardListCard {
	t.Helper()

	board, err := services.CreateBoard(db, userID, "project")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	list, err := services.CreateList(db, userID, board.ID, "todo")
	if err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}
	card, err := services.CreateCard(db, userID, services.CardInput{BoardListID: list.ID, Name: "task"})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	return card
}

func attachFixture(t *testing.T, db *gorm.DB, userID, cardID uint64, name string) *services.CardAttachmentView {
	t.Helper()

	view, err := services.AddCardAttachment(db, userID, cardID, services.UploadedFile{
		OriginName: name + ".png",
		Name:       "stored-" + name + ".png",
		Type:       "image/png",
		Size:       128,
	}, "/public")
	if err != nil {
		t.Fatalf("Failed to attach %q: %v", name, err)
	}
	return view
}

func coverCount(t *testing.T, db *gorm.DB, cardID uint64) int64 {
	t.Helper()

	var n int64
	err := db.Model(&models.CardAttachment{}).
		Where("board_list_card_id = ? AND is_cover = ?", cardID, true).
		Count(&n).Error
	if err != nil {
		t.Fatalf("Failed to count covers: %v", err)
	}
	return n
}

// TestAddCardAttachment tests the composed attachment view
func TestAddCardAttachment(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)

	view := attachFixture(t, db, user.ID, card.ID, "photo")

	if view.BoardListCardID != card.ID {
		t.Errorf("Expected card %d, got %d", card.ID, view.BoardListCardID)
	}
	if view.IsCover {
		t.Error("New attachment must not start as cover")
	}
	if view.Path != "/public/stored-photo.png" {
		t.Errorf("Expected servable path, got %q", view.Path)
	}
	if view.Detail.OriginName != "photo.png" {
		t.Errorf("Expected origin name preserved, got %q", view.Detail.OriginName)
	}
}

// TestSetCoverIdempotent tests that repeating setCover leaves exactly one
// cover
func TestSetCoverIdempotent(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)
	a := attachFixture(t, db, user.ID, card.ID, "a")

	if err := services.SetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover: %v", err)
	}
	if err := services.SetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover twice: %v", err)
	}

	if n := coverCount(t, db, card.ID); n != 1 {
		t.Errorf("Expected exactly one cover, got %d", n)
	}
}

// TestSetCoverSwitch tests that covering B after A leaves only B covered
func TestSetCoverSwitch(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)
	a := attachFixture(t, db, user.ID, card.ID, "a")
	b := attachFixture(t, db, user.ID, card.ID, "b")

	if err := services.SetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover A: %v", err)
	}
	if err := services.SetCover(db, b.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover B: %v", err)
	}

	if n := coverCount(t, db, card.ID); n != 1 {
		t.Fatalf("Expected exactly one cover, got %d", n)
	}

	var join models.CardAttachment
	if err := db.First(&join, b.ID).Error; err != nil {
		t.Fatalf("Failed to reload join B: %v", err)
	}
	if !join.IsCover {
		t.Error("Expected B to carry the cover mark")
	}
}

// TestUnsetCover tests clearing the cover mark
func TestUnsetCover(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)
	a := attachFixture(t, db, user.ID, card.ID, "a")

	if err := services.SetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover: %v", err)
	}
	if err := services.UnsetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to unset cover: %v", err)
	}

	if n := coverCount(t, db, card.ID); n != 0 {
		t.Errorf("Expected no covers, got %d", n)
	}
}

// TestDeleteOnlyCoverClearsCardCoverPath tests that removing the sole
// cover attachment leaves the card view with no cover path
func TestDeleteOnlyCoverClearsCardCoverPath(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	card := createCardFixture(t, db, user.ID)
	a := attachFixture(t, db, user.ID, card.ID, "a")

	if err := services.SetCover(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to set cover: %v", err)
	}
	if err := services.DeleteCardAttachment(db, a.ID, user.ID); err != nil {
		t.Fatalf("Failed to delete attachment: %v", err)
	}

	cards, err := services.GetCards(db, user.ID, card.BoardListID, "/public")
	if err != nil {
		t.Fatalf("Failed to load cards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}
	if cards[0].CoverPath != "" {
		t.Errorf("Expected empty cover path, got %q", cards[0].CoverPath)
	}
	if len(cards[0].Attachments) != 0 {
		t.Errorf("Expected no attachments, got %d", len(cards[0].Attachments))
	}
}

// TestSetCoverOwnership tests that a foreign user cannot toggle covers
func TestSetCoverOwnership(t *testing.T) {
	db := testutil.SetupDB(t)
	user := testutil.CreateUser(t, db, "alice")
	intruder := testutil.CreateUser(t, db, "bob")
	card := createCardFixture(t, db, user.ID)
	a := attachFixture(t, db, user.ID, card.ID, "a")

	err := services.SetCover(db, a.ID, intruder.ID)
	requireCustomError(t, err, 403)

	err = services.SetCover(db, 31337, user.ID)
	requireCustomError(t, err, 404)
}
