package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rifkydyatama/si-eligible/config"
	"github.com/rifkydyatama/si-eligible/internal/dto"
	"github.com/rifkydyatama/si-eligible/internal/repository"
	"github.com/rifkydyatama/si-eligible/pkg/jwt"
	"github.com/rifkydyatama/si-eligible/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRefreshInvalid     = errors.New("refresh token invalid")
)

// AuthService handles login, token refresh and logout for both
// students and staff. Students authenticate with their NISN, staff
// with their username.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, userID, role string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the auth service. rdb may be nil; the token
// blacklist then degrades to a no-op.
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.lookupUser(ctx, req.Username, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.String("role", req.Role), zap.Error(err))
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshInvalid
	}

	if s.rdb != nil {
		revoked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("blacklist check failed", zap.Error(err))
		} else if revoked {
			return nil, ErrRefreshInvalid
		}
	}

	user, err := s.loadUser(ctx, claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Rotate: the old refresh token is revoked once exchanged.
	if s.rdb != nil && claims.ExpiresAt != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("blacklist refresh token failed", zap.Error(err))
		}
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID, role string) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := user.toResponse()
	return &resp, nil
}

// authUser is the role-independent identity resolved during login.
type authUser struct {
	id           string
	name         string
	role         string
	nisn         string
	passwordHash string
}

func (u *authUser) toResponse() dto.UserResponse {
	return dto.UserResponse{
		ID:   u.id,
		Name: u.name,
		Role: u.role,
		NISN: u.nisn,
	}
}

func (s *authService) lookupUser(ctx context.Context, username, role string) (*authUser, error) {
	if role == "student" {
		student, err := s.repo.Student.GetByNISN(ctx, username)
		if err != nil {
			return nil, err
		}
		return &authUser{
			id:           student.StudentID,
			name:         student.Name,
			role:         "student",
			nisn:         student.NISN,
			passwordHash: student.PasswordHash,
		}, nil
	}

	staff, err := s.repo.Staff.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	// An admin account cannot log in through the staff role and vice
	// versa.
	if staff.Role != role {
		return nil, gorm.ErrRecordNotFound
	}
	return &authUser{
		id:           staff.StaffID,
		name:         staff.Name,
		role:         staff.Role,
		passwordHash: staff.PasswordHash,
	}, nil
}

func (s *authService) loadUser(ctx context.Context, userID, role string) (*authUser, error) {
	if role == "student" {
		student, err := s.repo.Student.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &authUser{
			id:   student.StudentID,
			name: student.Name,
			role: "student",
			nisn: student.NISN,
		}, nil
	}

	staff, err := s.repo.Staff.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if staff.Role != role {
		return nil, gorm.ErrRecordNotFound
	}
	return &authUser{
		id:   staff.StaffID,
		name: staff.Name,
		role: staff.Role,
	}, nil
}

func (s *authService) issueTokens(user *authUser) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.id, user.role)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.id, user.role)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         user.toResponse(),
	}, nil
}
