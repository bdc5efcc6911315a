package model

// HandSign is a single label from the sign vocabulary. Labels are created only
// by the seeding routine and are never mutated or deleted at runtime.
type HandSign struct {
	Name string `json:"name"`
}
