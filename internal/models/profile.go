package models

// Profile is the read-only account card shown on the profile tab
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Initials string `json:"initials"`
}
