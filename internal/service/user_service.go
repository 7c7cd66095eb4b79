package service

import (
	"go.uber.org/zap"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/internal/dto"
)

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) GetAllUsers() ([]domain.User, error) {
	return s.users.FindAll()
}

func (s *UserService) GetUserByID(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("user")
	}
	return u, nil
}

func (s *UserService) CreateUser(d *dto.CreateUserDTO) (*domain.User, error) {
	existing, err := s.users.FindByEmail(d.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("email already in use")
	}

	// DTO 已校验过，这里再挡一次，防止绕过边界层直接调用
	if len(d.Password) < 6 {
		return nil, domain.Validation("password must be at least 6 characters")
	}

	u, err := s.users.Create(d.Email, d.Name, d.Password)
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("id", u.ID), zap.String("email", u.Email))
	return u, nil
}

func (s *UserService) UpdateUser(id string, d *dto.UpdateUserDTO) (*domain.User, error) {
	u, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	// 仅当 email 实际变化时才做唯一性检查
	if d.Email != nil && *d.Email != u.Email {
		existing, err := s.users.FindByEmail(*d.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.Conflict("email already in use")
		}
	}

	updated, err := s.users.Update(id, domain.UserPatch{Name: d.Name, Email: d.Email})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("user")
	}
	return updated, nil
}

func (s *UserService) DeleteUser(id string) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	if _, err := s.users.Delete(id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("id", id))
	return nil
}
