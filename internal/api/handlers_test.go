// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/models"
	"github.com/antoineeeHao/itinera/internal/planner"
	"github.com/antoineeeHao/itinera/internal/pricing"
	"github.com/antoineeeHao/itinera/internal/recommend"
	"github.com/antoineeeHao/itinera/internal/validation"
)

// envelope mirrors APIResponse with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.New()
	resolver := pricing.NewResolver(pricing.Options{Table: cat})

	scorer, err := recommend.NewScorer(recommend.DefaultConfig(), cat, resolver, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	optimizer, err := budget.NewOptimizer(budget.DefaultConfig(), cat, resolver, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewOptimizer() error = %v", err)
	}

	mw := NewChiMiddleware(&ChiMiddlewareConfig{RateLimitDisabled: true})
	h := NewHandler(planner.New(scorer, optimizer), cat, resolver, "test")
	return NewRouter(h, mw, 0).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rec, env := do(t, h, http.MethodGet, "/health", "")

	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d success = %v", rec.Code, env.Success)
	}
	var status HealthStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatal(err)
	}
	if status.LivePricing {
		t.Error("LivePricing = true without a fetcher")
	}
	if status.Destinations != 15 || status.Currency != "EUR" || status.Version != "test" {
		t.Errorf("status = %+v", status)
	}
	if rec.Header().Get("X-Request-ID") == "" || env.Meta == nil || env.Meta.RequestID == "" {
		t.Error("request ID missing from header or meta")
	}
}

func TestDestinations(t *testing.T) {
	h := newTestHandler(t)
	rec, env := do(t, h, http.MethodGet, "/api/v1/destinations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var dests []destinationView
	if err := json.Unmarshal(env.Data, &dests); err != nil {
		t.Fatal(err)
	}
	if len(dests) != 15 {
		t.Fatalf("got %d destinations, want 15", len(dests))
	}
	for _, d := range dests {
		if d.ID == "barcelona" {
			if d.Airport != "BCN" || len(d.Activities) != 8 {
				t.Errorf("barcelona = %s with %d activities", d.Airport, len(d.Activities))
			}
			return
		}
	}
	t.Error("barcelona not listed")
}

func TestRecommendations(t *testing.T) {
	h := newTestHandler(t)
	body := `{"start_date":"2025-06-01","nights":5,"budget":800,"style":"standard","interests":["Foodie"]}`

	rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var result planner.Recommendation
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Ranked) != 15 {
		t.Fatalf("ranked %d, want 15", len(result.Ranked))
	}
	if result.Plan == nil || result.Infeasible != nil {
		t.Fatalf("plan = %v infeasible = %v, want a plan", result.Plan, result.Infeasible)
	}
	if result.Plan.DestinationID != result.Ranked[0].DestinationID {
		t.Errorf("plan for %s, top pick %s", result.Plan.DestinationID, result.Ranked[0].DestinationID)
	}
	if result.Plan.TotalCost > 800 {
		t.Errorf("total %v over budget", result.Plan.TotalCost)
	}
}

func TestRecommendations_InfeasibleIsOK(t *testing.T) {
	h := newTestHandler(t)
	for _, budget := range []string{"100", "0"} {
		t.Run("budget "+budget, func(t *testing.T) {
			body := `{"start_date":"2025-06-01","nights":5,"budget":` + budget + `}`

			rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations", body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
			}

			var result planner.Recommendation
			if err := json.Unmarshal(env.Data, &result); err != nil {
				t.Fatal(err)
			}
			if result.Plan != nil || result.Infeasible == nil || result.Infeasible.Shortfall <= 0 {
				t.Errorf("plan = %v infeasible = %+v, want shortfall", result.Plan, result.Infeasible)
			}
		})
	}
}

func TestRecommendations_InterestWeightsAlone(t *testing.T) {
	h := newTestHandler(t)
	body := `{"start_date":"2025-06-01","nights":5,"budget":800,"interest_weights":{"hiking":3}}`

	rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var result planner.Recommendation
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	for _, d := range result.Ranked {
		want := 0.0
		if d.DestinationID == "zurich" {
			want = 1
		}
		if d.DestinationID == "zurich" || d.DestinationID == "barcelona" {
			if got := d.Components["preference"]; got != want {
				t.Errorf("%s preference = %v, want %v", d.DestinationID, got, want)
			}
		}
	}
}

func TestRecommendations_BadRequests(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		body   string
		status int
		code   string
		field  string
	}{
		{"empty body", "", http.StatusBadRequest, ErrCodeBadRequest, ""},
		{"malformed", `{"nights":`, http.StatusBadRequest, ErrCodeBadRequest, ""},
		{"unknown field", `{"start_date":"2025-06-01","nights":5,"budget":800,"pets":true}`, http.StatusBadRequest, ErrCodeBadRequest, ""},
		{"bad date", `{"start_date":"June 1st","nights":5,"budget":800}`, http.StatusBadRequest, ErrCodeValidationFailed, "start_date"},
		{"no nights", `{"start_date":"2025-06-01","nights":0,"budget":800}`, http.StatusBadRequest, ErrCodeValidationFailed, "nights"},
		{"negative budget", `{"start_date":"2025-06-01","nights":5,"budget":-5}`, http.StatusBadRequest, ErrCodeValidationFailed, "budget"},
		{"bad style", `{"start_date":"2025-06-01","nights":5,"budget":800,"style":"backpacker"}`, http.StatusBadRequest, ErrCodeValidationFailed, "style"},
		{"unknown interest", `{"start_date":"2025-06-01","nights":5,"budget":800,"interests":["golf"]}`, http.StatusBadRequest, ErrCodeValidationFailed, "interests[0]"},
		{"negative weight", `{"start_date":"2025-06-01","nights":5,"budget":800,"interest_weights":{"hiking":-1}}`, http.StatusBadRequest, ErrCodeValidationFailed, "interest_weights[hiking]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.code {
				t.Fatalf("error = %+v, want code %s", env.Error, tt.code)
			}
			if tt.field == "" {
				return
			}
			raw, _ := json.Marshal(env.Error.Details)
			var fields []validation.FieldError
			if err := json.Unmarshal(raw, &fields); err != nil {
				t.Fatal(err)
			}
			if len(fields) != 1 || fields[0].Field != tt.field {
				t.Errorf("fields = %+v, want %s", fields, tt.field)
			}
		})
	}
}

func TestPlans(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"feasible", `{"destination_id":"barcelona","start_date":"2025-06-01","nights":5,"budget":800,"interests":["foodie"]}`, http.StatusOK, ""},
		{"infeasible", `{"destination_id":"barcelona","start_date":"2025-06-01","nights":5,"budget":100}`, http.StatusUnprocessableEntity, ErrCodeBudgetInfeasible},
		{"unknown destination", `{"destination_id":"atlantis","start_date":"2025-06-01","nights":5,"budget":800}`, http.StatusNotFound, ErrCodeNotFound},
		{"missing destination", `{"start_date":"2025-06-01","nights":5,"budget":800}`, http.StatusBadRequest, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/v1/plans", tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.code != "" {
				if env.Error == nil || env.Error.Code != tt.code {
					t.Errorf("error = %+v, want %s", env.Error, tt.code)
				}
				return
			}

			var plan models.BudgetPlan
			if err := json.Unmarshal(env.Data, &plan); err != nil {
				t.Fatal(err)
			}
			if plan.DestinationID != "barcelona" || len(plan.Days) != 5 || plan.TotalCost > 800 {
				t.Errorf("plan = %s days=%d total=%v", plan.DestinationID, len(plan.Days), plan.TotalCost)
			}
		})
	}
}

func TestPlans_InfeasibleDetails(t *testing.T) {
	h := newTestHandler(t)
	body := `{"destination_id":"barcelona","start_date":"2025-06-01","nights":5,"budget":100}`

	_, env := do(t, h, http.MethodPost, "/api/v1/plans", body)
	raw, _ := json.Marshal(env.Error.Details)

	var details budget.InfeasibleError
	if err := json.Unmarshal(raw, &details); err != nil {
		t.Fatal(err)
	}
	if details.DestinationID != "barcelona" || details.Budget != 100 || details.Shortfall <= 0 {
		t.Errorf("details = %+v", details)
	}
}

func TestPrices(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		query  string
		status int
		class  string
	}{
		{"flight default class", "item=CDG-BCN&date=2025-06-01", http.StatusOK, "economy"},
		{"flight business", "item=CDG-BCN&date=2025-06-01&class=business", http.StatusOK, "business"},
		{"lodging", "item=lodging:barcelona&date=2025-06-01&class=mid", http.StatusOK, "mid"},
		{"activity", "item=barcelona-sagrada-familia&date=2025-06-01", http.StatusOK, "standard"},
		{"class for another kind", "item=CDG-BCN&date=2025-06-01&class=mid", http.StatusBadRequest, ""},
		{"unknown class", "item=CDG-BCN&date=2025-06-01&class=first", http.StatusBadRequest, ""},
		{"unknown item", "item=CDG-XXX&date=2025-06-01", http.StatusNotFound, ""},
		{"missing date", "item=CDG-BCN", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodGet, "/api/v1/prices?"+tt.query, "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var quote models.PriceQuote
			if err := json.Unmarshal(env.Data, &quote); err != nil {
				t.Fatal(err)
			}
			if quote.Class != tt.class || quote.Source != models.SourceFallback || quote.Amount <= 0 || quote.Date != "2025-06-01" {
				t.Errorf("quote = %+v", quote)
			}
		})
	}
}

func TestPrices_Deterministic(t *testing.T) {
	h := newTestHandler(t)
	var first float64
	for i := 0; i < 3; i++ {
		_, env := do(t, h, http.MethodGet, "/api/v1/prices?item=lodging:krakow&date=2025-09-14&class=budget", "")
		var quote models.PriceQuote
		if err := json.Unmarshal(env.Data, &quote); err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			first = quote.Amount
		} else if quote.Amount != first {
			t.Fatalf("amount %v differs from %v", quote.Amount, first)
		}
	}
}
