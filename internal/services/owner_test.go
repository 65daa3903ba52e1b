package services_test

import (
	"testing"

	"github.com/localnerve/boardsdb/internal/services"
	"github.com/localnerve/boardsdb/internal/testutil"
	"github.com/localnerve/boardsdb/internal/types"
)

// requireCustomError asserts the error is a CustomError with the status
func requireCustomError(t *testing.T, err error, code int) *types.CustomError {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error with code %d, got nil", code)
	}
	custom, ok := err.(*types.CustomError)
	if !ok {
		t.Fatalf("Expected CustomError, got %T: %v", err, err)
	}
	if custom.Code != code {
		t.Fatalf("Expected code %d, got %d (%s)", code, custom.Code, custom.Message)
	}
	return custom
}

// TestOwnershipValidation tests the owner/forbidden/notfound triad on boards
func TestOwnershipValidation(t *testing.T) {
	db := testutil.SetupDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	intruder := testutil.CreateUser(t, db, "intruder")

	board, err := services.CreateBoard(db, owner.ID, "mine")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	// Owner succeeds
	got, err := services.GetOwnedBoard(db, board.ID, owner.ID)
	if err != nil {
		t.Fatalf("Owner lookup failed: %v", err)
	}
	if got.ID != board.ID {
		t.Errorf("Expected board %d, got %d", board.ID, got.ID)
	}

	// Another user is refused without revealing more than existence
	_, err = services.GetOwnedBoard(db, board.ID, intruder.ID)
	requireCustomError(t, err, 403)

	// Nonexistent id is not found for anyone
	_, err = services.GetOwnedBoard(db, 99999, owner.ID)
	requireCustomError(t, err, 404)
}

// TestOwnershipValidationDeep tests the same triad further down the
// hierarchy
func TestOwnershipValidationDeep(t *testing.T) {
	db := testutil.SetupDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	intruder := testutil.CreateUser(t, db, "intruder")

	board, _ := services.CreateBoard(db, owner.ID, "mine")
	list, err := services.CreateList(db, owner.ID, board.ID, "todo")
	if err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}
	card, err := services.CreateCard(db, owner.ID, services.CardInput{
		BoardListID: list.ID,
		Name:        "task",
	})
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	if _, err := services.GetOwnedList(db, list.ID, intruder.ID); err == nil {
		t.Error("Expected forbidden list lookup to fail")
	} else {
		requireCustomError(t, err, 403)
	}

	if _, err := services.GetOwnedCard(db, card.ID, intruder.ID); err == nil {
		t.Error("Expected forbidden card lookup to fail")
	} else {
		requireCustomError(t, err, 403)
	}

	_, err = services.GetOwnedCard(db, 424242, owner.ID)
	requireCustomError(t, err, 404)
}

// TestCreateListChecksBoardOwnership tests that creating into another
// user's board is refused
func TestCreateListChecksBoardOwnership(t *testing.T) {
	db := testutil.SetupDB(t)
	owner := testutil.CreateUser(t, db, "owner")
	intruder := testutil.CreateUser(t, db, "intruder")

	board, _ := services.CreateBoard(db, owner.ID, "mine")

	_, err := services.CreateList(db, intruder.ID, board.ID, "sneaky")
	requireCustomError(t, err, 403)
}
