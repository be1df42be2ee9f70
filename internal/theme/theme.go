// Package theme holds the light/dark preference shared by every section of
// one composed page.
package theme

import (
	"fmt"
	"strings"
)

type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Opposite returns the value Toggle would switch to.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", s)
	}
}

// State is the single owned theme value of a page. It has one writer
// (Toggle) and any number of readers. Subscribers run synchronously, in
// subscription order, before Toggle returns.
//
// State is not safe for concurrent use; each page owns its own instance.
type State struct {
	current Theme
	nextID  int
	subs    []subscription
}

type subscription struct {
	id int
	fn func(Theme)
}

func NewState(initial Theme) *State {
	return &State{current: initial}
}

func (s *State) Get() Theme {
	return s.current
}

// Toggle flips the theme and notifies every subscriber with the new value.
func (s *State) Toggle() {
	s.current = s.current.Opposite()
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(s.current)
	}
}

// Subscribe registers fn for future toggles. The returned func removes it
// and is safe to call more than once.
func (s *State) Subscribe(fn func(Theme)) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports how many readers are attached.
func (s *State) Subscribers() int {
	return len(s.subs)
}
