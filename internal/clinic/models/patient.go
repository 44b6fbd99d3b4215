package models

import (
	"slices"
	"sync"
)

// Patient is a registered person identified by their CPF.
//
// Invariants:
//   - ID is not validated here; the caller admits only valid CPFs
//   - History is in scheduling order and mirrors the registry's master list
//     for this patient. Only the registry calls AddToHistory and
//     RemoveFromHistory, while holding its own lock.
type Patient struct {
	Person
	id string

	mu      sync.RWMutex
	history []*Appointment
}

var _ Personal = (*Patient)(nil)

func NewPatient(id, name string, age int, sex Sex) (*Patient, error) {
	person, err := NewPerson(name, age, sex)
	if err != nil {
		return nil, err
	}
	return &Patient{Person: person, id: id}, nil
}

func (p *Patient) ID() string { return p.id }

// History returns a copy of the patient's appointments in scheduling order.
func (p *Patient) History() []*Appointment {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*Appointment{}, p.history...)
}

// AddToHistory appends a to the history.
func (p *Patient) AddToHistory(a *Appointment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = append(p.history, a)
}

// RemoveFromHistory drops a from the history, reporting whether it was present.
func (p *Patient) RemoveFromHistory(a *Appointment) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := slices.Index(p.history, a)
	if i < 0 {
		return false
	}
	p.history = slices.Delete(p.history, i, i+1)
	return true
}

// HasInHistory reports whether a is in the history.
func (p *Patient) HasInHistory(a *Appointment) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Contains(p.history, a)
}
