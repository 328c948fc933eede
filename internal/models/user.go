package models

// User is a registered marketplace participant.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
