package session

// Storage keys of the persisted session record.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Credential is the current session. The zero value is the anonymous session.
type Credential struct {
	Token    string
	Username string
}

// Authenticated reports whether the credential carries a non-empty token.
func (c Credential) Authenticated() bool {
	return c.Token != ""
}
