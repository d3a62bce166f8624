package request

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Role     string  `json:"role" validate:"required,oneof=seeker provider both"`
	Phone    *string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionMeta carries the client details recorded on the session row. Taken
// from the request, not the body, so it is never validated.
type SessionMeta struct {
	UserAgent string
	IPAddress string
}
