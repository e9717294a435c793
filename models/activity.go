package models

// UserRequest is one entry in a client's recent-activity history.
type UserRequest struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}
