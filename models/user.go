// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account.
//
// Passcode carries the plain-text passcode on the way in (registration and
// authentication requests) and the bcrypt digest once it has been read from
// or written to storage. It is never written to a response or a token.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"-" db:"id"`

	LastName  string `json:"LastName" db:"last_name"`
	FirstName string `json:"FirstName" db:"first_name"`

	// UserName is unique across all users.
	UserName string `json:"UserName" db:"user_name"`

	Passcode string `json:"Passcode" db:"passcode"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Claims returns the identity claims embedded into session tokens for u.
// The passcode is deliberately not part of the result.
func (u User) Claims() Claims {
	return Claims{
		UserID:    u.UserID,
		UserName:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
