package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/user"
	"github.com/timeclock-app/timeclock-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type ProfileServiceImpl struct {
	profile.ProfileRepository
	users user.UserRepository
	files file.FileService
}

func NewProfileService(profileRepo profile.ProfileRepository, userRepo user.UserRepository, fileService file.FileService) profile.ProfileService {
	return &ProfileServiceImpl{
		ProfileRepository: profileRepo,
		users:             userRepo,
		files:             fileService,
	}
}

// getUserID extracts user_id from JWT claims
func getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return userID, nil
}

func mapProfileToResponse(p profile.Profile) profile.ProfileResponse {
	return profile.ProfileResponse{
		UserID:            p.UserID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		DisplayName:       p.DisplayName(),
		Role:              string(p.Role),
		ExpectedStartTime: p.ExpectedStartTime,
		GraceMinutes:      p.GraceMinutes,
		AvatarURL:         p.AvatarURL,
		CreatedAt:         p.CreatedAt,
	}
}

// GetMyProfile implements profile.ProfileService.
func (s *ProfileServiceImpl) GetMyProfile(ctx context.Context) (profile.ProfileResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}
	return mapProfileToResponse(p), nil
}

// UpdateMyProfile implements profile.ProfileService. Schedule fields are
// untouched here; only admins change those through UpdateSchedule.
func (s *ProfileServiceImpl) UpdateMyProfile(ctx context.Context, req profile.UpdateProfileRequest) (profile.ProfileResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p.FirstName = req.FirstName
	p.LastName = req.LastName

	updated, err := s.Update(ctx, p)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return mapProfileToResponse(updated), nil
}

// ChangePassword implements profile.ProfileService.
func (s *ProfileServiceImpl) ChangePassword(ctx context.Context, req profile.ChangePasswordRequest) error {
	userID, err := getUserID(ctx)
	if err != nil {
		return err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !u.HasPassword() {
		return profile.ErrNoLocalPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return profile.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UploadAvatar implements profile.ProfileService.
func (s *ProfileServiceImpl) UploadAvatar(ctx context.Context, req profile.UploadAvatarRequest) (profile.ProfileResponse, error) {
	userID, err := getUserID(ctx)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	url, err := s.files.UploadAvatar(ctx, userID, req.File, req.FileHeader.Filename)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	p.AvatarURL = &url
	updated, err := s.Update(ctx, p)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return mapProfileToResponse(updated), nil
}

// UpdateSchedule implements profile.ProfileService. Changes apply to future
// clock-ins only; stored lateness never moves.
func (s *ProfileServiceImpl) UpdateSchedule(ctx context.Context, req profile.UpdateScheduleRequest) (profile.ProfileResponse, error) {
	p, err := s.GetByUserID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return profile.ProfileResponse{}, profile.ErrProfileNotFound
		}
		return profile.ProfileResponse{}, err
	}

	if req.ExpectedStartTime != nil {
		if *req.ExpectedStartTime == "" {
			p.ExpectedStartTime = nil
		} else {
			p.ExpectedStartTime = req.ExpectedStartTime
		}
	}
	if req.GraceMinutes != nil {
		p.GraceMinutes = *req.GraceMinutes
	}

	updated, err := s.Update(ctx, p)
	if err != nil {
		return profile.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return mapProfileToResponse(updated), nil
}
