package models

// User is the session-scoped identity record. The username is an email-shaped
// identifier. Passwords never appear here.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Credential is a row of the mock credential table: a user plus the password
// it logs in with. The password is excluded from any serialized form.
type Credential struct {
	User
	Password string `json:"-"`
}
