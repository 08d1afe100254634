package model

import "time"

// GenerateRequest represents a password generation or strength request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
	Color    string `json:"color"`
	Score    int    `json:"score"`
}

// StrengthResponse rates a configuration without generating a password.
type StrengthResponse struct {
	Length   int    `json:"length"`
	Strength string `json:"strength"`
	Color    string `json:"color"`
}

// GenerationEvent records the configuration of one successful generation.
// The password itself is never part of it.
type GenerationEvent struct {
	ID        string
	Length    int
	Classes   string
	Strength  string
	CreatedAt time.Time
}

// StatsResponse summarizes recorded generations per strength tier.
type StatsResponse struct {
	Total      int64            `json:"total"`
	ByStrength map[string]int64 `json:"by_strength"`
}
