package models

import "time"

// Permission is a console permission string, grouped by module, owned by
// this layer's own schema (not lbi_ods).
type Permission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Module    string    `json:"module"`
	CreatedAt time.Time `json:"created_at"`
}

// Role maps a console role to its permission subset.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminUser is a console operator account created at provisioning time.
type AdminUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
