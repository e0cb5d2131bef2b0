package model

import "time"

// PasswordEvent is the anonymized record kept for each generated password.
// It never carries the password itself.
type PasswordEvent struct {
	ID        int64
	Length    int
	ClassMask uint8
	Verdict   string
	CreatedAt time.Time
}

// Class bits stored in PasswordEvent.ClassMask.
const (
	ClassLowercase uint8 = 1 << iota
	ClassUppercase
	ClassDigits
	ClassSymbols
)

// StatsResponse summarizes generated passwords by verdict.
type StatsResponse struct {
	Total     int64            `json:"total"`
	ByVerdict map[string]int64 `json:"by_verdict"`
	Since     *time.Time       `json:"since,omitempty"`
}
