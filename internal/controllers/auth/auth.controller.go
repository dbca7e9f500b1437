package authController

import (
	"context"
	"errors"

	"ogrelist/config"
	"ogrelist/internal/auth"
	. "ogrelist/internal/models"
	"ogrelist/internal/repositories"
	"ogrelist/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

// ErrInvalidCredentials is deliberately returned for both unknown usernames
// and wrong passwords so login failures don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthController struct {
	userRepo repositories.UserRepository
	config   config.Config
	log      logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
}

func New(repos repositories.Repository, config config.Config) AuthControllerInterface {
	return &AuthController{
		userRepo: repos.User,
		config:   config,
		log:      logger.New("authController"),
	}
}

func (c *AuthController) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	log := c.log.Function("Register")

	if _, err := c.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, repositories.ErrDuplicate
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, log.Err("failed to check for existing user", err, "username", req.Username)
	}

	if _, err := c.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, repositories.ErrDuplicate
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, log.Err("failed to check for existing email", err, "email", req.Email)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
	}

	if err := c.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("User registered", "userID", user.ID, "username", user.Username)
	return user, nil
}

func (c *AuthController) Login(ctx context.Context, req LoginRequest) (string, error) {
	log := c.log.Function("Login")

	user, err := c.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", log.Err("failed to look up user", err, "username", req.Username)
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(c.config.JWTSecret, user.ID, c.config.JWTExpiryMinutes)
	if err != nil {
		return "", log.Err("failed to generate token", err, "userID", user.ID)
	}

	log.Info("User logged in", "userID", user.ID)
	return token, nil
}
