package models

import (
	"fmt"
	"math"
	"time"
)

// RatingNotAvailable is rendered when no numeric rating exists.
const RatingNotAvailable = "N/A"

// Candidate represents an interview candidate record
// @Description Candidate record with optional interviewer feedback
type Candidate struct {
	ID           string    `json:"id" example:"c_117"`
	InterviewRef string    `json:"interview_id" example:"iv_01"`
	FullName     string    `json:"full_name,omitempty" example:"Sam Lee"`
	CreatedAt    time.Time `json:"created_at" example:"2026-04-02T09:00:00Z"`
	Feedback     *Feedback `json:"feedback,omitempty"`
}

// Feedback holds the interview outcome. Ratings maps criterion name to
// a JSON value; only numeric entries count toward the average.
type Feedback struct {
	Ratings map[string]interface{} `json:"ratings,omitempty"`
}

// RatingLabel averages the numeric ratings and renders "<n>/10" with
// the mean rounded to the nearest integer. Non-numeric entries are
// skipped; with nothing to average the sentinel comes back. Every
// level of the structure is optional, no shape causes an error.
func (c Candidate) RatingLabel() string {
	if c.Feedback == nil || len(c.Feedback.Ratings) == 0 {
		return RatingNotAvailable
	}

	var sum float64
	var n int
	for _, v := range c.Feedback.Ratings {
		f, ok := numeric(v)
		if !ok {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return RatingNotAvailable
	}

	return fmt.Sprintf("%d/10", int(math.Round(sum/float64(n))))
}

func numeric(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	}
	return 0, false
}
