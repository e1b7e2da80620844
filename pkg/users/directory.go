// Package users holds the static in-memory user directory served by
// GET /users.
package users

import "sync/atomic"

type User struct {
	ID   uint32 `json:"id" doc:"Directory entry id"`
	Name string `json:"name" doc:"Display name"`
}

// Directory is a snapshot cell over an immutable user list. A single
// writer replaces the whole snapshot; readers never block and never see
// a partial update.
type Directory struct {
	snapshot atomic.Pointer[[]User]
}

func NewDirectory(initial []User) *Directory {
	d := &Directory{}
	d.Replace(initial)
	return d
}

// Snapshot returns the current list. Callers must not mutate it.
func (d *Directory) Snapshot() []User {
	return *d.snapshot.Load()
}

// Replace swaps in a new list. The input is copied so later mutation by
// the caller cannot leak into served snapshots.
func (d *Directory) Replace(users []User) {
	cp := make([]User, len(users))
	copy(cp, users)
	d.snapshot.Store(&cp)
}

// Defaults returns the seed list served until something replaces it.
func Defaults() []User {
	return []User{
		{ID: 1, Name: "Taro"},
		{ID: 2, Name: "Hanako"},
	}
}
