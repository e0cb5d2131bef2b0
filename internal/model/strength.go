package model

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthReport is the API view of a strength classification.
// Score and CrackTime are advisory and never change the verdict.
type StrengthReport struct {
	Verdict      string  `json:"verdict"`
	Length       int     `json:"length"`
	Categories   int     `json:"categories"`
	AlphabetSize int     `json:"alphabet_size"`
	Entropy      float64 `json:"entropy"`
	Score        int     `json:"score"`
	CrackTime    string  `json:"crack_time"`
}

// StrengthResponse represents a strength check response.
type StrengthResponse struct {
	StrengthReport
}
