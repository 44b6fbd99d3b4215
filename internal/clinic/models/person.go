// Package models holds the clinic's records: people, doctors, patients and
// the appointments linking them.
//
// Person data is immutable after construction. The only mutable state is a
// patient's appointment history, which the registry maintains alongside its
// master appointment list.
package models

import (
	dErrors "clinic/pkg/domain-errors"
)

// Sex is recorded as entered. SexMale and SexFemale are the values the
// default doctor seed uses.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Personal is the read-only identity shared by patients and doctors.
type Personal interface {
	Name() string
	Age() int
	Sex() Sex
}

// Person is embedded by Patient and Doctor.
//
// Invariants:
//   - Age is never negative
//   - Fields never change after construction
type Person struct {
	name string
	age  int
	sex  Sex
}

// NewPerson builds a Person, rejecting negative ages.
func NewPerson(name string, age int, sex Sex) (Person, error) {
	if age < 0 {
		return Person{}, dErrors.New(dErrors.CodeInvariantViolation, "age cannot be negative")
	}
	return Person{name: name, age: age, sex: sex}, nil
}

func (p Person) Name() string { return p.name }
func (p Person) Age() int     { return p.age }
func (p Person) Sex() Sex     { return p.sex }
