// Package domain holds the row types served by the API.
package domain

import "time"

// Record carries the columns every table shares.
// It is embedded in every resource type.
type Record struct {
	ID        int64     `json:"id" readOnly:"true" doc:"Auto-increment primary key"`
	CreatedAt time.Time `json:"created_at" readOnly:"true"`
	UpdatedAt time.Time `json:"updated_at" readOnly:"true"`
}

// Base exposes the shared columns of any row embedding Record.
func (r *Record) Base() *Record {
	return r
}

// InitTimestamps sets both timestamps to now.
func (r *Record) InitTimestamps() {
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch updates UpdatedAt.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// Model is satisfied by a pointer to a row type embedding Record.
// Generic tables and services are parameterised by T and PT = *T.
type Model[T any] interface {
	*T
	Base() *Record
}
