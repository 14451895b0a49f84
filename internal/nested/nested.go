// Package nested implements the operations shared by every ordered
// collection embedded in a document: likes, comments, learning languages
// and travel plans. Each entry carries its own id so it can be addressed
// independently of its position.
package nested

import "github.com/google/uuid"

// Entry is an element of an embedded collection.
type Entry interface {
	EntryID() string
}

// NewID returns a fresh entry id.
func NewID() string {
	return uuid.NewString()
}

// IndexOf returns the position of the entry with the given id, or -1.
func IndexOf[S ~[]E, E Entry](s S, id string) int {
	for i, e := range s {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}

// Find returns the entry with the given id.
func Find[S ~[]E, E Entry](s S, id string) (E, bool) {
	if i := IndexOf(s, id); i >= 0 {
		return s[i], true
	}
	var zero E
	return zero, false
}

// Contains reports whether any entry satisfies match.
func Contains[S ~[]E, E any](s S, match func(E) bool) bool {
	for _, e := range s {
		if match(e) {
			return true
		}
	}
	return false
}

// Append adds e at the end.
func Append[S ~[]E, E any](s S, e E) S {
	return append(s, e)
}

// Prepend adds e at the front. The result never shares storage with s.
func Prepend[S ~[]E, E any](s S, e E) S {
	out := make(S, 0, len(s)+1)
	out = append(out, e)
	return append(out, s...)
}

// Replace swaps the entry with the given id for e, keeping its position.
// It reports false and returns s unchanged when no entry has that id.
func Replace[S ~[]E, E Entry](s S, id string, e E) (S, bool) {
	i := IndexOf(s, id)
	if i < 0 {
		return s, false
	}
	out := make(S, len(s))
	copy(out, s)
	out[i] = e
	return out, true
}

// Remove deletes the entry with the given id, preserving the order of the rest.
func Remove[S ~[]E, E Entry](s S, id string) (S, bool) {
	i := IndexOf(s, id)
	if i < 0 {
		return s, false
	}
	out := make(S, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...), true
}
