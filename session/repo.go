package session

import (
	"sync"

	"github.com/naxo-910/elsabor-api/models"
)

// CredentialRepo is the credential table the provider logs users in against.
// It is injected so tests can seed their own rows.
type CredentialRepo interface {
	Lookup(username string) (models.Credential, bool)
	Append(cred models.Credential)
	NextID() int
}

// MemoryRepo is the in-memory CredentialRepo used by the demo.
type MemoryRepo struct {
	mu    sync.Mutex
	creds []models.Credential
}

// NewMemoryRepo builds a repo over the given rows.
func NewMemoryRepo(creds []models.Credential) *MemoryRepo {
	return &MemoryRepo{creds: creds}
}

// Seeded returns the repo preloaded with the demo's fixed credential table.
func Seeded() *MemoryRepo {
	return NewMemoryRepo([]models.Credential{
		{User: models.User{ID: 1, Username: "jos.vasquezz@duocuc.cl", Name: "José Vásquez", IsAdmin: true}, Password: "123456"},
		{User: models.User{ID: 2, Username: "usuario1@duocuc.cl", Name: "Usuario 1"}, Password: "123"},
		{User: models.User{ID: 3, Username: "usuario2@gmail.com", Name: "Usuario 2"}, Password: "123"},
		{User: models.User{ID: 4, Username: "profesor1@profesor.duoc.cl", Name: "Profesor 1"}, Password: "123"},
	})
}

func (r *MemoryRepo) Lookup(username string) (models.Credential, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.creds {
		if c.Username == username {
			return c, true
		}
	}
	return models.Credential{}, false
}

func (r *MemoryRepo) Append(cred models.Credential) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds = append(r.creds, cred)
}

// NextID continues past the highest id in the table.
func (r *MemoryRepo) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, c := range r.creds {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
