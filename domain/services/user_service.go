package services

import (
	"context"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userID uint) error
	GenerateJWT(user *models.User) (string, error)
}
