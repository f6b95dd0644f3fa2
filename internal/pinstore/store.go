// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pinstore

import (
	"fmt"
	"iter"
	"slices"
)

// Pin is a saved tag and the invocation it names.
type Pin struct {
	Tag        string `yaml:"tag" json:"tag"`
	Invocation string `yaml:"invocation" json:"invocation"`
}

// Store is an ordered mapping from tag to invocation.
// The zero value is an empty store ready to use.
type Store struct {
	pins  []Pin
	index map[string]int // tag -> position in pins
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Len returns the number of pins in the store.
func (s *Store) Len() int {
	return len(s.pins)
}

// Add inserts a pin, or replaces the invocation of an existing tag in place.
func (s *Store) Add(tag, invocation string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	if i, ok := s.index[tag]; ok {
		s.pins[i].Invocation = invocation
		return
	}

	s.index[tag] = len(s.pins)
	s.pins = append(s.pins, Pin{Tag: tag, Invocation: invocation})
}

// Get returns the invocation for tag.
func (s *Store) Get(tag string) (string, error) {
	i, ok := s.index[tag]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTagNotFound, tag)
	}

	return s.pins[i].Invocation, nil
}

// Delete removes tag from the store. The order of the remaining pins is kept.
func (s *Store) Delete(tag string) error {
	i, ok := s.index[tag]
	if !ok {
		return fmt.Errorf("%w: %q", ErrTagNotFound, tag)
	}

	s.pins = slices.Delete(s.pins, i, i+1)
	delete(s.index, tag)

	for j := i; j < len(s.pins); j++ {
		s.index[s.pins[j].Tag] = j
	}

	return nil
}

// List returns the pins as (tag, invocation) pairs in store order.
// The sequence can be ranged over any number of times.
func (s *Store) List() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range s.pins {
			if !yield(p.Tag, p.Invocation) {
				return
			}
		}
	}
}

// Pins returns a copy of the pins in store order.
func (s *Store) Pins() []Pin {
	return slices.Clone(s.pins)
}
