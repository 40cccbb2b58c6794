package dto

import "time"

// Returned by GET /api/status
type Status struct {
	Subreddit       string    `json:"subreddit"`
	StartedAt       time.Time `json:"started_at"`
	LastCycleStart  time.Time `json:"last_cycle_start"`
	LastCycleEnd    time.Time `json:"last_cycle_end"`
	LastCycleError  string    `json:"last_cycle_error,omitempty"`
	CyclesCompleted int       `json:"cycles_completed"`
	PostsHandled    int       `json:"posts_handled"`
	Platforms       []string  `json:"platforms"`
}

// Returned by GET /api/ledger/{postId}
type LedgerLookup struct {
	PostId string `json:"post_id"`
	Seen   bool   `json:"seen"`
}
