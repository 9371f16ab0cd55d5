package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fsanano/stockmgmt/internal/apperr"
	"fsanano/stockmgmt/internal/model"
	"fsanano/stockmgmt/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type SignupInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AdminAccount describes the administrator created by EnsureAdmin.
type AdminAccount struct {
	Username    string
	Email       string
	PhoneNumber string
	Address     string
	Password    string
}

// UserService manages accounts. The configured admin email is reserved:
// signups for it are rejected so only EnsureAdmin can claim it.
type UserService struct {
	users      UserStore
	bcryptCost int
	adminEmail string
}

func NewUserService(users UserStore, bcryptCost int, adminEmail string) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost, adminEmail: strings.TrimSpace(adminEmail)}
}

func (s *UserService) isReserved(email string) bool {
	return s.adminEmail != "" && strings.EqualFold(strings.TrimSpace(email), s.adminEmail)
}

func (s *UserService) Register(ctx context.Context, in SignupInput) (*model.User, error) {
	if in.Username == "" || in.Email == "" || in.PhoneNumber == "" || in.Address == "" ||
		in.Password == "" || in.ConfirmPassword == "" {
		return nil, apperr.New(apperr.KindValidation, "All fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, apperr.New(apperr.KindValidation, "Passwords do not match")
	}

	if s.isReserved(in.Email) {
		return nil, apperr.New(apperr.KindConflict, "User already exists")
	}

	_, err := s.users.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, apperr.New(apperr.KindConflict, "User already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           newID(),
		Username:     in.Username,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		CreatedAt:    now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.KindConflict, "User already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "Email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, err
	}

	ok, err := checkPassword(user.PasswordHash, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.KindAuth, "Invalid credentials")
	}

	return &LoginResult{
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin(),
	}, nil
}

// ListCustomers returns every account except administrators.
func (s *UserService) ListCustomers(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsersExcludingRole(ctx, model.RoleAdmin)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return apperr.New(apperr.KindNotFound, "User not found")
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "User not found")
		}
		return err
	}
	return nil
}

// EnsureAdmin creates the administrator account unless it already exists.
// It reports whether an account was created. An existing non-admin account
// holding the admin email is an error.
func (s *UserService) EnsureAdmin(ctx context.Context, admin AdminAccount) (bool, error) {
	if strings.TrimSpace(admin.Email) == "" || admin.Password == "" {
		return false, errors.New("admin email and password must be set")
	}

	existing, err := s.users.GetUserByEmail(ctx, admin.Email)
	if err == nil {
		if !existing.IsAdmin() {
			return false, fmt.Errorf("admin email %s is held by a %s account", admin.Email, existing.Role)
		}
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := s.hash(admin.Password)
	if err != nil {
		return false, err
	}

	err = s.users.CreateUser(ctx, &model.User{
		ID:           newID(),
		Username:     admin.Username,
		Email:        admin.Email,
		PhoneNumber:  admin.PhoneNumber,
		Address:      admin.Address,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    now(),
	})
	if err != nil {
		// another instance seeded it first
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.New(apperr.KindValidation, "Password is too long")
		}
		return "", err
	}
	return hash, nil
}
