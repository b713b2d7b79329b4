package usecase

import (
	"github.com/exporthub/exporthub-api/internal/application/dto"
	"github.com/exporthub/exporthub-api/internal/domain/catalog"
	"github.com/exporthub/exporthub-api/internal/domain/entity"
	"github.com/exporthub/exporthub-api/internal/domain/repository"
)

// UserUseCase consultas del directorio de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUserResponse(u), nil
}

// List lista los usuarios en el orden del snapshot.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Stats cuenta usuarios activos y administradores.
func (uc *UserUseCase) Stats() (*dto.UserStatsResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.UserStatsResponse{}
	for _, u := range list {
		if u.Status == entity.UserStatusActive {
			stats.ActiveUsers++
		}
		if u.Role == entity.RoleAdmin {
			stats.Admins++
		}
	}
	return stats, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       toOption(catalog.UserRoles.Resolve(u.Role)),
		Status:     toOption(catalog.UserStatuses.Resolve(u.Status)),
		Phone:      u.Phone,
		Department: u.Department,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
