package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	tutorRepo "tutorgo/database/repository/tutor"
	userRepo "tutorgo/database/repository/user"
	"tutorgo/models"
	"tutorgo/utils"
)

// tokenDuration is how long an issued auth token stays valid.
const tokenDuration = 72 * time.Hour

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserService covers accounts: registration, authentication and profile
// management.
type UserService interface {
	Register(req models.RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, req models.UserUpdateRequest) (*models.User, error)
	ChangePassword(id, currentPassword, newPassword string) error
	RevokeToken(id string) error
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	TutorRepo tutorRepo.TutorRepository
}

// Register creates an account and, for tutors, the attached tutoring profile.
func (s *DefaultUserService) Register(req models.RegisterRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, NewAuthError("An account with this email already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if req.Role == models.RoleTutor {
		profile := &models.Tutor{
			ID:         uuid.New().String(),
			UserID:     account.ID,
			Name:       account.Name,
			Field:      req.Field,
			Bio:        req.Bio,
			HourlyRate: req.HourlyRate,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.TutorRepo.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create tutor profile: %w", err)
		}
	}

	return s.issueToken(account)
}

// Authenticate verifies credentials and issues a fresh token. The token hash
// stored on the account makes earlier tokens revocable.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		return nil, NewAuthError("Invalid email or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError("Invalid email or password.")
	}

	return s.issueToken(account)
}

func (s *DefaultUserService) issueToken(account *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Email, account.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(account.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	return &AuthResponse{
		ID:    account.ID,
		Token: token,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) UpdateProfile(id string, req models.UserUpdateRequest) (*models.User, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		account.Name = req.Name
	}
	if req.PhotoURL != "" {
		account.PhotoURL = req.PhotoURL
	}
	account.UpdatedAt = time.Now()
	if err := s.Repo.Update(account); err != nil {
		return nil, err
	}

	// Keep the denormalized tutor name in sync.
	if account.Role == models.RoleTutor && req.Name != "" {
		if tutor, terr := s.TutorRepo.GetByUserID(id); terr == nil && tutor != nil {
			tutor.Name = account.Name
			tutor.UpdatedAt = time.Now()
			if uerr := s.TutorRepo.Update(tutor); uerr != nil {
				utils.GetLogger().Warn("UpdateProfile: failed to sync tutor name", zap.Error(uerr))
			}
		}
	}
	return account, nil
}

func (s *DefaultUserService) ChangePassword(id, currentPassword, newPassword string) error {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)); err != nil {
		return NewAuthError("The current password is incorrect.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = string(hash)
	account.TokenHash = "" // force re-login everywhere
	account.UpdatedAt = time.Now()
	return s.Repo.Update(account)
}

// RevokeToken invalidates the account's current token (logout everywhere).
func (s *DefaultUserService) RevokeToken(id string) error {
	return s.Repo.UpdateTokenHash(id, "")
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
