package dto

import (
	"errors"

	"github.com/tunestream/tunes-api/internal/domain"
)

// AddSongRequest is the body of POST /api/admin/songs.
// Duration is carried as integer seconds; display formatting is a client
// concern.
type AddSongRequest struct {
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	DurationSecs int    `json:"durationSecs"`
	Genre        string `json:"genre"`
	Tier         string `json:"tier"`
	AudioURL     string `json:"audioUrl"`
	CoverURL     string `json:"coverUrl"`
	TxDigest     string `json:"txDigest"`
}

// Validate validates the request body. Unlike the access-control paths,
// admin input rejects unknown tier names instead of degrading them to free:
// a typo here would silently publish a paid track to everyone.
func (r *AddSongRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Artist == "" {
		return errors.New("artist is required")
	}
	if r.AudioURL == "" {
		return errors.New("audioUrl is required")
	}
	if r.DurationSecs < 0 {
		return errors.New("durationSecs must not be negative")
	}
	if r.Tier != "" && !domain.KnownTier(r.Tier) {
		return errors.New("unknown tier name: " + r.Tier)
	}
	return nil
}

// SubscribeRequest is the body of POST /api/subscribe
type SubscribeRequest struct {
	UserAddress string `json:"userAddress"`
	Tier        string `json:"tier"`
	TxDigest    string `json:"txDigest"`
}

// Validate validates the request body
func (r *SubscribeRequest) Validate() error {
	if r.UserAddress == "" {
		return errors.New("userAddress is required")
	}
	if r.Tier == "" {
		return errors.New("tier is required")
	}
	if r.TxDigest == "" {
		return errors.New("txDigest is required")
	}
	return nil
}

// PlayRequest is the body of POST /api/play
type PlayRequest struct {
	SongID      string `json:"songId"`
	UserAddress string `json:"userAddress"`
	TxDigest    string `json:"txDigest"`
}

// Validate validates the request body
func (r *PlayRequest) Validate() error {
	if r.SongID == "" {
		return errors.New("songId is required")
	}
	if r.UserAddress == "" {
		return errors.New("userAddress is required")
	}
	return nil
}
