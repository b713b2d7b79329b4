package repository

import "github.com/exporthub/exporthub-api/internal/domain/entity"

// UserRepository puerto de lectura para User.
type UserRepository interface {
	GetByID(id int) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
