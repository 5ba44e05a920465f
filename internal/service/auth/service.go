package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/auth"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/database"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/email"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/jwt"
	"github.com/timeclock-app/timeclock-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	profiles profile.ProfileRepository
	jwt.Service
	postgresql.JWTRepository
	resets      postgresql.PasswordResetRepository
	email       email.EmailService
	frontendURL string
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	profileRepository profile.ProfileRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	resetRepository postgresql.PasswordResetRepository,
	emailService email.EmailService,
	frontendURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		profiles:       profileRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
		resets:         resetRepository,
		email:          emailService,
		frontendURL:    frontendURL,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates both tokens and persists the refresh token hash in
// the same transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, role user.Role, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokens auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		var err error
		tokens.AccessToken, tokens.AccessTokenExpiresIn, err = a.GenerateAccessToken(u.ID, u.Email, role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokens.RefreshToken, tokens.RefreshTokenExpiresIn, err = a.GenerateRefreshToken(u.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, u.ID, tokens.RefreshToken, tokens.RefreshTokenExpiresIn, session); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokens, nil
}

func (a *AuthServiceImpl) roleFor(ctx context.Context, userID string) user.Role {
	prof, err := a.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return user.RoleEmployee
	}
	return prof.Role
}

// Register implements auth.AuthService. The user and their profile are
// created in one transaction so neither can exist without the other.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	exists, err := a.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		created, err = a.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: &hashed,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		_, err = a.profiles.Create(txCtx, profile.Profile{
			UserID:       created.ID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         user.RoleEmployee,
			GraceMinutes: 5,
		})
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, created, user.RoleEmployee, session)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !userData.HasPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, a.roleFor(ctx, userData.ID), session)
}

// LoginWithGoogle implements auth.AuthService. Unknown emails get a fresh
// account with an empty profile; known ones get the Google identity linked.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.GetByEmail(ctx, googleEmail)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if errors.Is(err, user.ErrUserNotFound) {
		provider := "google"
		err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
			txCtx := postgresql.ContextWithTx(ctx, tx)

			userData, err = a.UserRepository.Create(txCtx, user.User{
				Email:           googleEmail,
				OAuthProvider:   &provider,
				OAuthProviderID: &googleID,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			_, err = a.profiles.Create(txCtx, profile.Profile{
				UserID:       userData.ID,
				Role:         user.RoleEmployee,
				GraceMinutes: 5,
			})
			if err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			return nil
		})
		if err != nil {
			return auth.TokenResponse{}, err
		}
	} else if userData.OAuthProvider == nil || userData.OAuthProviderID == nil {
		userData, err = a.LinkGoogleAccount(ctx, googleID, userData.Email)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.issueTokens(ctx, userData, a.roleFor(ctx, userData.ID), session)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	// Verify signature and expiry first.
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// Then check the database for revocation.
	userID, revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.GenerateAccessToken(userData.ID, userData.Email, a.roleFor(ctx, userData.ID))
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// ForgotPassword implements auth.AuthService. Unknown emails succeed
// silently so the endpoint cannot be used to enumerate accounts.
func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	userData, err := a.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.Info("Password reset requested for unknown email", "email", req.Email)
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(raw)
	expiresAt := time.Now().Add(resetTokenTTL)

	if err := a.resets.CreateResetToken(ctx, userData.ID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", a.frontendURL, token)
	if err := a.email.SendPasswordReset(userData.Email, resetLink, expiresAt.Format(time.RFC1123)); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword implements auth.AuthService. Consuming the token and
// rewriting the password happen in one transaction.
func (a *AuthServiceImpl) ResetPassword(ctx context.Context, req auth.ResetPasswordRequest) error {
	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		userID, err := a.resets.ConsumeResetToken(txCtx, req.Token)
		if err != nil {
			return err
		}
		if err := a.UpdatePassword(txCtx, userID, hashed); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		return nil
	})
}
