package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/slava-del/RTAF/internal/auth"
	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository"
)

// RegisterInput carries the fields accepted at registration. Role is fixed
// server-side; clients cannot choose it.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Company  string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	RecordLogout(ctx context.Context, userID int64)
}

type authService struct {
	users  repository.UserRepository
	events EventSink
}

func NewAuthService(users repository.UserRepository, events EventSink) AuthService {
	return &authService{users: users, events: events}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, ErrCredentialsRequired
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: hash,
		FullName:     in.FullName,
		Company:      in.Company,
		Role:         model.RoleUser,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.events.Notify(ctx, created.ID, "Welcome to RTA", "Your account has been created successfully.", model.NotifySuccess)
	s.events.Record(ctx, created.ID, "User Registration", fmt.Sprintf("User %s registered", created.Username))

	return created, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.events.Record(ctx, user.ID, "User Login", fmt.Sprintf("User %s logged in", user.Username))

	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *authService) RecordLogout(ctx context.Context, userID int64) {
	s.events.Record(ctx, userID, "User Logout", "User logged out")
}
