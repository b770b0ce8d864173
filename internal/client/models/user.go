package models

// NewUser is the body of POST /users.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordChange is the body of POST /change-password.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Message is the {"message": ...} acknowledgement the backend returns for
// user and model mutations.
type Message struct {
	Message string `json:"message"`
}
