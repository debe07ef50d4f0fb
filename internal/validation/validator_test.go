// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package validation

import (
	"strings"
	"testing"
)

type tripRequest struct {
	StartDate string   `json:"start_date" validate:"required,isodate"`
	Nights    int      `json:"nights" validate:"gte=1,lte=30"`
	Budget    float64  `json:"budget" validate:"gt=0"`
	Style     string   `json:"style" validate:"omitempty,style"`
	Origin    string   `json:"origin" validate:"omitempty,iata"`
	Interests []string `json:"interests" validate:"max=10,dive,interest"`
}

func validTrip() tripRequest {
	return tripRequest{
		StartDate: "2025-06-01",
		Nights:    5,
		Budget:    800,
		Style:     "standard",
		Origin:    "CDG",
		Interests: []string{"foodie", "Museums"},
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	req := validTrip()
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStruct_Fields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*tripRequest)
		field  string
		tag    string
	}{
		{"missing date", func(r *tripRequest) { r.StartDate = "" }, "start_date", "required"},
		{"bad date", func(r *tripRequest) { r.StartDate = "01/06/2025" }, "start_date", "isodate"},
		{"no nights", func(r *tripRequest) { r.Nights = 0 }, "nights", "gte"},
		{"too many nights", func(r *tripRequest) { r.Nights = 31 }, "nights", "lte"},
		{"zero budget", func(r *tripRequest) { r.Budget = 0 }, "budget", "gt"},
		{"unknown style", func(r *tripRequest) { r.Style = "backpacker" }, "style", "style"},
		{"lowercase origin", func(r *tripRequest) { r.Origin = "cdg" }, "origin", "iata"},
		{"unknown interest", func(r *tripRequest) { r.Interests = []string{"foodie", "golf"} }, "interests[1]", "interest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTrip()
			tt.mutate(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Fields) != 1 {
				t.Fatalf("got %d field errors, want 1: %v", len(err.Fields), err)
			}
			fe := err.Fields[0]
			if fe.Field != tt.field || fe.Tag != tt.tag {
				t.Errorf("field error = %s/%s, want %s/%s", fe.Field, fe.Tag, tt.field, tt.tag)
			}
			if fe.Message == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestValidateStruct_CollectsAllFields(t *testing.T) {
	req := validTrip()
	req.Nights = 0
	req.Budget = -1

	err := ValidateStruct(&req)
	if err == nil || len(err.Fields) != 2 {
		t.Fatalf("ValidateStruct() = %v, want two field errors", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "nights") || !strings.Contains(msg, "budget") {
		t.Errorf("Error() = %q, want both fields named", msg)
	}
}

func TestIsIATA(t *testing.T) {
	for in, want := range map[string]bool{"CDG": true, "BCN": true, "cdg": false, "CD": false, "CDGX": false, "C1G": false} {
		if got := isIATA(in); got != want {
			t.Errorf("isIATA(%q) = %v, want %v", in, got, want)
		}
	}
}
