package api

import "github.com/agromaps/agromaps-go/internal/client/domain"

// ============================================================================
// Auth requests
// ============================================================================

// LoginRequest authenticates by username or email.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// RegisterRequest creates an account. The backend issues tokens immediately
// on success, so registration implies login.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// UpdateProfileRequest edits the caller's own profile. Nil fields are left
// unchanged server-side.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	PasswordConfirm string `json:"password_confirm"`
}

// UpdateUserRequest edits another user's account; admin only.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ChangeRoleRequest reassigns a user's role; admin only.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role"`
}

// ============================================================================
// Auth responses
// ============================================================================

// AuthResponse is the token pair plus user returned by login and register.
type AuthResponse struct {
	Access  string             `json:"access"`
	Refresh string             `json:"refresh"`
	User    domain.UserProfile `json:"user"`
}

// UserListResponse is the paginated admin user listing.
type UserListResponse struct {
	Count   int                  `json:"count"`
	Results []domain.UserProfile `json:"results"`
}

// ============================================================================
// Chatbot
// ============================================================================

// SendMessageRequest posts a message to the assistant, optionally anchored to
// a soil study for context and to an existing conversation.
type SendMessageRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
	SoilStudyID    string `json:"soil_study_id,omitempty"`
}

// SendMessageResponse is the assistant's reply.
type SendMessageResponse struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}

// SoilContextResponse is the soil summary the assistant uses as grounding
// for a study.
type SoilContextResponse struct {
	StudyID string `json:"study_id"`
	Summary string `json:"summary"`
}

// ChatHealthResponse reports assistant availability.
type ChatHealthResponse struct {
	Status string `json:"status"`
}
