package domain

import (
	"fmt"
	"time"
)

// RatingValue is the binary reaction a visitor can record for an animal.
type RatingValue string

const (
	RatingLove RatingValue = "love"
	RatingNope RatingValue = "nope"
)

// ParseRatingValue accepts the wire value ("love"/"nope") and, for
// clients that submit the button text verbatim, the display labels.
func ParseRatingValue(s string) (RatingValue, error) {
	switch s {
	case "love", "Literally in love":
		return RatingLove, nil
	case "nope", "Not my type":
		return RatingNope, nil
	}
	return "", fmt.Errorf("invalid rating value %q", s)
}

// Label is the visitor-facing text for a rating value.
func (v RatingValue) Label() string {
	if v == RatingLove {
		return "Literally in love"
	}
	return "Not my type"
}

func (v RatingValue) String() string { return string(v) }

// Rating is one persisted reaction. At most one exists per
// (SessionID, AnimalName) pair; the session tracker guards that,
// not the store.
type Rating struct {
	SessionID  string
	AnimalName string
	Value      RatingValue
	CreatedAt  time.Time
}

// LeaderboardEntry is one aggregate row: an animal and its vote count.
type LeaderboardEntry struct {
	AnimalName string `json:"animal_name"`
	Count      int64  `json:"count"`
}

// Leaderboard holds the top-N animals per rating value, most votes first.
type Leaderboard struct {
	Love []LeaderboardEntry `json:"love"`
	Nope []LeaderboardEntry `json:"nope"`
}
