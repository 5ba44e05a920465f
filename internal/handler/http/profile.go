package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timeclock-app/timeclock-backend-go/internal/domain/profile"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/response"
	"github.com/timeclock-app/timeclock-backend-go/internal/pkg/validator"
)

const maxAvatarSize = 5 << 20 // 5 MB

type ProfileHandler interface {
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	UpdateMyProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	UploadAvatar(w http.ResponseWriter, r *http.Request)
	UpdateSchedule(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	profileService profile.ProfileService
}

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandlerImpl{
		profileService: profileService,
	}
}

// GetMyProfile implements ProfileHandler.
func (h *profileHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.profileService.GetMyProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMyProfile implements ProfileHandler.
func (h *profileHandlerImpl) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	var req profile.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.UpdateMyProfile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated", result)
}

// ChangePassword implements ProfileHandler.
func (h *profileHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req profile.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.profileService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password changed", nil)
}

// UploadAvatar implements ProfileHandler. Expects multipart/form-data with
// the image under the "avatar" field.
func (h *profileHandlerImpl) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "avatar file is required", nil)
		return
	}
	defer file.Close()

	if header.Size > maxAvatarSize {
		response.BadRequest(w, "avatar must not exceed 5 MB", nil)
		return
	}

	result, err := h.profileService.UploadAvatar(r.Context(), profile.UploadAvatarRequest{
		File:       file,
		FileHeader: header,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Avatar uploaded", result)
}

// UpdateSchedule implements ProfileHandler. Admin only; the target user comes
// from the URL.
func (h *profileHandlerImpl) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if !validator.IsValidUUID(userID) {
		response.BadRequest(w, "userID must be a valid UUID", nil)
		return
	}

	var req profile.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.profileService.UpdateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", result)
}
