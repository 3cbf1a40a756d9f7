package dto

import "fmt"

// SongResponse is the wire shape of a catalog song. Duration is stored as
// integer seconds and additionally formatted as m:ss for display.
type SongResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	Album        string `json:"album,omitempty"`
	DurationSecs int    `json:"durationSecs"`
	Duration     string `json:"duration"`
	Genre        string `json:"genre,omitempty"`
	Tier         string `json:"tier"`
	Cover        string `json:"cover,omitempty"`
	AudioURL     string `json:"audioUrl"`
	Plays        int64  `json:"plays"`
}

// SongsResponse wraps a song list
type SongsResponse struct {
	Songs []SongResponse `json:"songs"`
}

// AddSongResponse is returned by the admin add endpoint
type AddSongResponse struct {
	Success bool   `json:"success"`
	SongID  string `json:"songId"`
	Message string `json:"message,omitempty"`
}

// DeleteSongResponse is returned by the admin delete endpoint
type DeleteSongResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SubscriptionResponse is the current subscription state of a wallet.
// ExpiresAt is Unix milliseconds; 0 for the implicit free subscription.
type SubscriptionResponse struct {
	Tier      string `json:"tier"`
	ExpiresAt int64  `json:"expiresAt"`
	Active    bool   `json:"active"`
}

// SubscribeResponse is returned by a successful reconciliation
type SubscribeResponse struct {
	Success   bool   `json:"success"`
	Tier      string `json:"tier"`
	ExpiresAt int64  `json:"expiresAt"`
}

// PlayResponse acknowledges a recorded play
type PlayResponse struct {
	Success bool `json:"success"`
}

// HistoryEntryResponse is one play event joined with song metadata
type HistoryEntryResponse struct {
	SongID   string `json:"songId"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Cover    string `json:"cover,omitempty"`
	PlayedAt int64  `json:"playedAt"`
}

// HistoryResponse wraps a play history list
type HistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}

// TierCountResponse is the active subscriber count for one tier
type TierCountResponse struct {
	Tier  string `json:"tier"`
	Count int64  `json:"count"`
}

// StatsResponse holds the admin dashboard aggregates
type StatsResponse struct {
	TotalSongs        int64               `json:"totalSongs"`
	ActiveSubscribers int64               `json:"activeSubscribers"`
	TotalPlays        int64               `json:"totalPlays"`
	TierDistribution  []TierCountResponse `json:"tierDistribution"`
}

// FormatDuration renders whole seconds as m:ss for display
func FormatDuration(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
