// Package models defines the data model shared by the session store,
// the persistence layer, and the CLI.
package models

import "time"

// UserAccount is a registered user's durable profile and credential record.
//
// The password is stored verbatim, as the prototype this store backs never
// hashes credentials. Do not reuse this model outside the prototype.
type UserAccount struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Password          string    `json:"password"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Bio               string    `json:"bio"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	IsVerified        bool      `json:"is_verified"`
	IsPremium         bool      `json:"is_premium"`
	Followers         int       `json:"followers"`
	Following         int       `json:"following"`
	CreatedAt         time.Time `json:"created_at"`
}

// Clone returns a copy of the account. The session store hands out clones so
// callers can never mutate the registered set behind its back.
func (u *UserAccount) Clone() *UserAccount {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
