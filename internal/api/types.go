package api

import (
	"time"

	"github.com/sudo-self/links/internal/store"
)

// PageBody is the wire shape of one page aggregate.
type PageBody struct {
	PageID    string    `json:"page_id"`
	LikeCount int64     `json:"like_count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikeResponse is the canonical body for all single-page like operations:
// GET, POST, and DELETE all answer with the same shape.
type LikeResponse struct {
	Success  bool     `json:"success"`
	Page     PageBody `json:"page"`
	HasLiked bool     `json:"hasLiked"`
}

// LeaderboardResponse is the body for the top-pages listing.
type LeaderboardResponse struct {
	Success bool       `json:"success"`
	Pages   []PageBody `json:"pages"`
}

// ErrorResponse is the standard failure body.
type ErrorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	HasLiked *bool  `json:"hasLiked,omitempty"`
}

func pageBody(stat *store.PageStat) PageBody {
	return PageBody{
		PageID:    stat.PageID,
		LikeCount: stat.LikeCount,
		UpdatedAt: stat.UpdatedAt,
	}
}
