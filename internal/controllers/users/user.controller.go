package userController

import (
	"context"

	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"
	"ogrelist/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type UserController struct {
	userRepo repositories.UserRepository
	log      logger.Logger
}

type UserControllerInterface interface {
	GetProfile(ctx context.Context, userID int) (*User, error)
	UpdateProfile(ctx context.Context, user *User, req UpdateProfileRequest) (*User, error)
}

func New(repos repositories.Repository) UserControllerInterface {
	return &UserController{
		userRepo: repos.User,
		log:      logger.New("userController"),
	}
}

func (c *UserController) GetProfile(ctx context.Context, userID int) (*User, error) {
	return c.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies only the fields present in the request; username,
// password, and email are each individually optional.
func (c *UserController) UpdateProfile(
	ctx context.Context,
	user *User,
	req UpdateProfileRequest,
) (*User, error) {
	log := c.log.Function("UpdateProfile")

	if req.Username != nil && *req.Username != "" {
		user.Username = *req.Username
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, log.Err("failed to hash password", err, "userID", user.ID)
		}
		user.Password = hashed
	}

	if req.Email != nil && *req.Email != "" {
		user.Email = *req.Email
	}

	if err := c.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Info("Profile updated", "userID", user.ID)
	return user, nil
}
