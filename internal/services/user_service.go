package services

import (
	"errors"

	"github.com/localnerve/boardsdb/internal/models"
	"github.com/localnerve/boardsdb/internal/types"
	"gorm.io/gorm"
)

// Register creates a user with a hashed password. A taken username raises
// Conflict, whether detected by the pre-check or by the unique index under
// a concurrent register.
func Register(db *gorm.DB, name, password string) (*models.User, error) {
	var existing models.User
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, types.Conflict("The username is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		PasswordHash: hash,
	}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.Conflict("The username is already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Login checks the credential and issues a signed token. Unknown username
// raises NotFound, wrong password raises Forbidden.
func Login(db *gorm.DB, secret, name, password string) (*types.Identity, string, error) {
	var user models.User
	if err := db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", types.NotFound("The user does not exist")
		}
		return nil, "", err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, "", types.Forbidden("Wrong password")
	}

	identity := types.Identity{ID: user.ID, Name: user.Name}
	token, err := IssueToken(secret, identity)
	if err != nil {
		return nil, "", err
	}
	return &identity, token, nil
}
