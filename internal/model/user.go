package model

// User is a credential record from the user file.
// Password holds a bcrypt hash, never plaintext.
// The user file is read-only at runtime; records are managed out of
// band via the `projectmap user` commands.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
