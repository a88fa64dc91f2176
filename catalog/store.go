package catalog

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/naxo-910/elsabor-api/models"
)

// ErrNotFound is returned when no product matches the given id.
var ErrNotFound = errors.New("catalog: product not found")

// Store is the in-memory product table. It is constructed with a seed
// inventory and injected wherever products are read or administered; there is
// no package-level table.
type Store struct {
	mu     sync.Mutex
	byID   map[int]models.Product
	order  []int // insertion order of ids, drives List and Categories
	nextID int   // monotonic, ids are never reused after delete
}

// New builds a store from the given seed products. The id counter starts past
// the highest seeded id.
func New(seed []models.Product) *Store {
	s := &Store{
		byID:   make(map[int]models.Product, len(seed)),
		nextID: 1,
	}
	for _, p := range seed {
		if _, exists := s.byID[p.ID]; exists {
			continue
		}
		p.Price = clampPrice(p.Price)
		p.Stock = clampStock(p.Stock)
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s
}

// List returns a copy of every product in insertion order, never the live
// backing table.
func (s *Store) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// FindByID returns the product with the given id.
func (s *Store) FindByID(id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// ListByCategory returns products whose category matches name, compared
// case-insensitively.
func (s *Store) ListByCategory(name string) []models.Product {
	var out []models.Product
	for _, p := range s.List() {
		if p.Category != "" && strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// ListOffers returns products flagged as offers.
func (s *Store) ListOffers() []models.Product {
	var out []models.Product
	for _, p := range s.List() {
		if p.IsOffer {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories in order of first
// occurrence.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.List() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Search returns products whose name or description contains q,
// case-insensitively. An empty query matches everything.
func (s *Store) Search(q string) []models.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.List()
	}
	var out []models.Product
	for _, p := range s.List() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Create assigns the next id and inserts the drafted product. Price and stock
// strings are coerced; invalid or negative input becomes 0.
func (s *Store) Create(draft models.ProductDraft) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Product{
		ID:          s.nextID,
		Name:        draft.Name,
		Price:       coercePrice(draft.Price),
		Stock:       coerceStock(draft.Stock),
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
		IsOffer:     draft.IsOffer,
		Description: draft.Description,
	}
	s.nextID++
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

// Update merges the provided fields into the product with the given id.
func (s *Store) Update(id int, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = coercePrice(*patch.Price)
	}
	if patch.Stock != nil {
		p.Stock = coerceStock(*patch.Stock)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.IsOffer != nil {
		p.IsOffer = *patch.IsOffer
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	s.byID[id] = p
	return p, nil
}

// Delete removes the product with the given id and reports whether a row was
// removed. The id is never handed out again.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// DecrementStock reduces a product's stock by qty, clamped at 0. Unknown ids
// are a no-op.
func (s *Store) DecrementStock(id, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return
	}
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
	s.byID[id] = p
}

func coercePrice(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return clampPrice(f)
}

func coerceStock(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return clampStock(n)
}

func clampPrice(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func clampStock(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
