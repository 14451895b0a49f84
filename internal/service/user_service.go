package service

import (
	"context"
	"errors"
	"strings"

	"wayfarer/internal/auth"
	"wayfarer/internal/models"
	"wayfarer/internal/repository"
	"wayfarer/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo   repository.UserRepository
	tokens     *auth.TokenService
	bcryptCost int
}

type RegisterInput struct {
	Name      string `json:"name" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,min=3,max=50,email"`
	Password  string `json:"password" validate:"required,min=5,max=500"`
	ConfirmPW string `json:"confirmpw" validate:"required,min=5,max=500"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,min=3,max=50,email"`
	Password string `json:"password" validate:"required,min=5,max=500"`
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenService, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account. The returned user never carries the password hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := firstInvalid(KeyRegister, validation.Struct(in)); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if existing != nil {
		return nil, errEmailTaken()
	}

	if in.Password != in.ConfirmPW {
		return nil, models.NewValidationError(KeyRegister, "Passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{Name: in.Name, Email: in.Email, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errEmailTaken()
		}
		return nil, models.NewInternalError(err)
	}

	user.Password = ""
	return user, nil
}

// Login checks the credentials and returns a bearer token ("Bearer <jwt>").
func (s *UserService) Login(ctx context.Context, in LoginInput) (string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := firstInvalid(KeySignIn, validation.Struct(in)); err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	if user == nil {
		return "", models.NewNotFoundError(KeySignIn, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", models.NewValidationError(KeySignIn, "Password incorrect")
	}

	token, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return auth.BearerPrefix + token, nil
}

// ResolveIdentity returns the current identity of userID, or nil if the
// account no longer exists.
func (s *UserService) ResolveIdentity(ctx context.Context, userID uint) (*auth.Identity, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	id := identityOf(user)
	return &id, nil
}

// DeleteAccount removes the user, their profile and their posts.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.userRepo.DeleteAccount(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return fromRepo(err, nil)
}

func identityOf(u *models.User) auth.Identity {
	return auth.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Date: u.CreatedAt}
}
