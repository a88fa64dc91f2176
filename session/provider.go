package session

import (
	"errors"
	"regexp"

	"github.com/naxo-910/elsabor-api/models"
	"github.com/naxo-910/elsabor-api/storage"
)

var (
	ErrInvalidEmail       = errors.New("session: email must belong to duocuc.cl, profesor.duoc.cl or gmail.com")
	ErrInvalidCredentials = errors.New("session: wrong email or password")
	ErrPasswordLength     = errors.New("session: password must be between 4 and 10 characters")
	ErrUserExists         = errors.New("session: email is already registered")
)

// emailPattern restricts identifiers to the three allowed domains.
var emailPattern = regexp.MustCompile(`(?i)^[\w.+-]+@(duocuc\.cl|profesor\.duoc\.cl|gmail\.com)$`)

// RegisterDraft is the input to Register.
type RegisterDraft struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Provider is the mock identity provider: a credential table to log in
// against, plus a durable record of the active user. At most one user is
// active at a time.
type Provider struct {
	repo  CredentialRepo
	store *storage.Store
}

// New builds a provider over the given credential repo, usually Seeded().
func New(repo CredentialRepo, store *storage.Store) *Provider {
	return &Provider{repo: repo, store: store}
}

// Login checks the identifier and password against the credential table. On
// success the password-stripped user record is persisted as the active
// session.
func (p *Provider) Login(username, password string) (models.User, error) {
	if !emailPattern.MatchString(username) {
		return models.User{}, ErrInvalidEmail
	}
	cred, ok := p.repo.Lookup(username)
	if !ok || cred.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	if err := p.store.Put(storage.SessionKey, cred.User); err != nil {
		return models.User{}, err
	}
	return cred.User, nil
}

// Register appends a new non-admin credential row and logs the user in.
func (p *Provider) Register(draft RegisterDraft) (models.User, error) {
	if !emailPattern.MatchString(draft.Username) {
		return models.User{}, ErrInvalidEmail
	}
	if len(draft.Password) < 4 || len(draft.Password) > 10 {
		return models.User{}, ErrPasswordLength
	}
	if _, exists := p.repo.Lookup(draft.Username); exists {
		return models.User{}, ErrUserExists
	}
	cred := models.Credential{
		User: models.User{
			ID:       p.repo.NextID(),
			Username: draft.Username,
			Name:     draft.Name,
			IsAdmin:  false,
		},
		Password: draft.Password,
	}
	p.repo.Append(cred)
	if err := p.store.Put(storage.SessionKey, cred.User); err != nil {
		return models.User{}, err
	}
	return cred.User, nil
}

// Logout removes the persisted session record. Idempotent.
func (p *Provider) Logout() error {
	return p.store.Delete(storage.SessionKey)
}

// Restore reads the persisted user record. A missing or corrupt record
// reports no active session; it never fails into the caller.
func (p *Provider) Restore() (models.User, bool) {
	var user models.User
	ok, err := p.store.Get(storage.SessionKey, &user)
	if err != nil || !ok {
		return models.User{}, false
	}
	return user, true
}
