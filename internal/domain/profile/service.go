package profile

import "context"

type ProfileService interface {
	GetMyProfile(ctx context.Context) (ProfileResponse, error)
	UpdateMyProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	UploadAvatar(ctx context.Context, req UploadAvatarRequest) (ProfileResponse, error)
	// UpdateSchedule is admin-only and affects future clock-ins.
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ProfileResponse, error)
}
