package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jirao/internal/apperr"
	"jirao/internal/auth"
	"jirao/internal/db"
	"jirao/internal/entities"
	"jirao/internal/repository"
)

const hostApplicationMessage = "Host application submitted. Please wait for admin approval."

type AuthService struct {
	Repo      repository.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo repository.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{Repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an active guest immediately. A host registration only files
// a PendingHost application; the user record is created at admin approval.
func (s *AuthService) Register(req entities.RegisterRequest) (*entities.AuthResponse, error) {
	if req.Username == "" {
		return nil, apperr.Validation("username", "must not be empty")
	}
	if req.Email == "" {
		return nil, apperr.Validation("email", "must not be empty")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password", "must not be empty")
	}
	role := db.Role(req.Role)
	if role != db.RoleGuest && role != db.RoleHost {
		return nil, apperr.Validation("role", "must be guest or host")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == db.RoleHost {
		pending := &db.PendingHost{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Phone:        req.Phone,
			NIDImage:     req.NIDImage,
			AppliedAt:    time.Now().UTC(),
		}
		if err := s.Repo.CreatePendingHost(pending); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{PendingApproval: true, Message: hostApplicationMessage}, nil
	}

	u := &db.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         db.RoleGuest,
		Status:       db.UserActive,
		DateJoined:   time.Now().UTC(),
	}
	if err := s.Repo.CreateUser(u); err != nil {
		return nil, err
	}
	return s.respondWithToken(u)
}

func (s *AuthService) Login(req entities.LoginRequest) (*entities.AuthResponse, error) {
	return s.login(req, "")
}

// AdminLogin accepts only admin accounts; anything else reads as invalid
// credentials so the endpoint does not leak which accounts exist.
func (s *AuthService) AdminLogin(req entities.LoginRequest) (*entities.AuthResponse, error) {
	return s.login(req, db.RoleAdmin)
}

func (s *AuthService) login(req entities.LoginRequest, requiredRole db.Role) (*entities.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("email", "email and password are required")
	}
	u, err := s.Repo.GetUserByEmail(req.Email)
	if err != nil {
		var nf *apperr.NotFoundError
		if errors.As(err, &nf) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if requiredRole != "" && u.Role != requiredRole {
		return nil, apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if u.Status == db.UserBanned {
		return nil, apperr.ErrAccountBanned
	}
	return s.respondWithToken(u)
}

func (s *AuthService) respondWithToken(u *db.User) (*entities.AuthResponse, error) {
	token, err := auth.GenerateToken(s.jwtSecret, u, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	view := entities.NewUserView(u)
	return &entities.AuthResponse{User: &view, Token: token}, nil
}
