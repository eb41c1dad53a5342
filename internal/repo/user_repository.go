package repo

import (
	"errors"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")
