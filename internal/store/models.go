package store

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

type Meeting struct {
	ID        string
	Title     string
	Code      string
	HostID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
