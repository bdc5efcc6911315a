package model

import "time"

// ValidationResult records one user's answer for one video. The pair
// (UserID, VideoID) is unique; resubmission overwrites the previous answer
// and timestamp rather than creating a duplicate.
type ValidationResult struct {
	UserID       int       `json:"userId"`
	VideoID      string    `json:"videoId"`
	SelectedSign string    `json:"selectedSign"`
	SubmittedAt  time.Time `json:"timestamp"`
}

// SubmitRequest is the API request body for POST /api/submit.
type SubmitRequest struct {
	UserID       int    `json:"userId"`
	VideoID      string `json:"videoId"`
	SelectedSign string `json:"selectedSign"`
}

// SubmitResponse is the API response after recording an answer.
type SubmitResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    ValidationResult `json:"data"`
}

// ProgressResponse reports how many videos a user has answered.
type ProgressResponse struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
