package models

// RegisterRequest is the normalized registration payload forwarded to the
// account service. LastName is omitted when the caller did not send one.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	EmailID   string `json:"emailId"`
	Password  string `json:"password"`
}

// LoginRequest is the normalized login payload forwarded to the account
// service.
type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}
