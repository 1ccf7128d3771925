package entities

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	NIDImage string `json:"nid_image,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register. A host registration does not
// create a user yet: PendingApproval is set and User/Token are empty until an
// admin approves the application.
type AuthResponse struct {
	User            *UserView `json:"user,omitempty"`
	Token           string    `json:"token,omitempty"`
	PendingApproval bool      `json:"pending_approval,omitempty"`
	Message         string    `json:"message,omitempty"`
}
