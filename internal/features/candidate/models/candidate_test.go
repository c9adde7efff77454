package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingLabel(t *testing.T) {
	tests := []struct {
		name     string
		feedback *Feedback
		want     string
	}{
		{
			name:     "no feedback",
			feedback: nil,
			want:     RatingNotAvailable,
		},
		{
			name:     "empty ratings",
			feedback: &Feedback{Ratings: map[string]interface{}{}},
			want:     RatingNotAvailable,
		},
		{
			name: "only non numeric entries",
			feedback: &Feedback{Ratings: map[string]interface{}{
				"notes": "strong candidate",
				"pass":  true,
			}},
			want: RatingNotAvailable,
		},
		{
			name: "mixed entries skip non numeric",
			feedback: &Feedback{Ratings: map[string]interface{}{
				"communication": 4.0,
				"coding":        8.0,
				"notes":         nil,
			}},
			want: "6/10",
		},
		{
			name: "int values",
			feedback: &Feedback{Ratings: map[string]interface{}{
				"systems": 9,
			}},
			want: "9/10",
		},
		{
			name: "mean rounds to nearest",
			feedback: &Feedback{Ratings: map[string]interface{}{
				"a": 7.0,
				"b": 8.0,
			}},
			want: "8/10",
		},
		{
			name: "half rounds up",
			feedback: &Feedback{Ratings: map[string]interface{}{
				"a": 6.0,
				"b": 7.0,
			}},
			want: "7/10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Candidate{Feedback: tt.feedback}
			assert.Equal(t, tt.want, c.RatingLabel())
		})
	}
}

func TestRatingLabel_FromJSON(t *testing.T) {
	raw := `{"id":"c_117","interview_id":"iv_01","full_name":"Sam Lee","feedback":{"ratings":{"communication":8,"coding":7,"notes":"solid"}}}`

	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	// JSON numbers decode as float64; 7.5 rounds up
	assert.Equal(t, "8/10", c.RatingLabel())
}
