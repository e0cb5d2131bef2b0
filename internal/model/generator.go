package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Lowercase *bool `json:"lowercase"`
	Uppercase *bool `json:"uppercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
}

// GeneratedPassword is a single generated password with its strength report.
type GeneratedPassword struct {
	Password string         `json:"password"`
	Length   int            `json:"length"`
	Strength StrengthReport `json:"strength"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
}
