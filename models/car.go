// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Car is a vehicle record owned by exactly one [User].
type Car struct {
	ID     int64  `json:"ID" db:"id"`
	Make   string `json:"Make" db:"make"`
	MakeID int64  `json:"Make_id" db:"make_id"`

	// UserID references the owning user. On create it is taken from the
	// verified token, never from the request body.
	UserID int64 `json:"user_id" db:"user_id"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "car"
}

// CarMake is the response body of a single-car lookup.
type CarMake struct {
	Make string `json:"Make"`
}

// MutationResult reports the outcome of an INSERT, UPDATE or DELETE.
type MutationResult struct {
	// InsertID is the identifier generated by an INSERT. Zero otherwise.
	InsertID int64 `json:"insertId,omitempty"`

	// AffectedRows is the number of rows changed by the statement.
	AffectedRows int64 `json:"affectedRows"`
}
