// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/antoineeeHao/itinera/internal/catalog"
	"github.com/antoineeeHao/itinera/internal/logging"
	"github.com/antoineeeHao/itinera/internal/validation"
)

// destinationView is a catalog destination with its activities.
type destinationView struct {
	catalog.Destination
	Activities []catalog.Activity `json:"activities"`
}

// Destinations lists the catalog.
//
// GET /api/v1/destinations
func (h *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	dests := h.catalog.Destinations()
	out := make([]destinationView, len(dests))
	for i := range dests {
		out[i] = destinationView{
			Destination: dests[i],
			Activities:  h.catalog.Activities(dests[i].ID),
		}
	}
	NewResponseWriter(w, r).Success(out)
}

// Recommendations ranks every destination for a trip and plans the top
// pick. An unaffordable top pick is still a 200: the recommendation
// carries the shortfall instead of a plan.
//
// POST /api/v1/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var body TripRequest
	if !decodeAndValidate(rw, r, &body) {
		return
	}
	req, err := body.toPlanner()
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	rec, err := h.planner.Recommend(r.Context(), req)
	if err != nil {
		respondPlanningError(rw, err)
		return
	}
	rw.Success(rec)
}

// Plans fits a chosen destination into the budget.
//
// POST /api/v1/plans
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var body PlanRequest
	if !decodeAndValidate(rw, r, &body) {
		return
	}
	req, err := body.toPlanner()
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	plan, err := h.planner.Plan(r.Context(), body.DestinationID, req)
	if err != nil {
		respondPlanningError(rw, err)
		return
	}
	rw.Success(plan)
}

// Prices resolves one item. The class defaults to the cheapest class of
// the item's kind.
//
// GET /api/v1/prices?item=CDG-BCN&date=2025-06-01&class=economy
func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	q := r.URL.Query()
	query := PriceQuery{
		Item:  q.Get("item"),
		Date:  q.Get("date"),
		Class: q.Get("class"),
	}
	if verr := validation.ValidateStruct(&query); verr != nil {
		rw.ValidationError(verr.Error(), verr.Fields)
		return
	}

	item, ok := h.catalog.ParseItem(query.Item)
	if !ok {
		rw.NotFound(fmt.Sprintf("%v: %s", ErrUnknownItem, query.Item))
		return
	}
	class := query.Class
	if class == "" {
		class = defaultClass(item.Kind)
	}
	if !classFits(item.Kind, class) {
		rw.BadRequest(fmt.Sprintf("class %q does not apply to %s items", class, item.Kind))
		return
	}

	date, err := time.Parse(validation.DateLayout, query.Date)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	quote := h.prices.Resolve(r.Context(), item, date, class)
	logging.CtxDebug(r.Context()).
		Str("item", quote.ItemID).
		Str("source", string(quote.Source)).
		Float64("amount", quote.Amount).
		Msg("Price resolved")
	rw.Success(quote)
}

// decodeAndValidate reads a JSON body into dst and validates it, writing
// the error response itself when it returns false.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(rw.w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			rw.BadRequest("request body is required")
		case errors.As(err, &maxErr):
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "request body too large")
		default:
			rw.BadRequest("invalid JSON body: " + err.Error())
		}
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ValidationError(verr.Error(), verr.Fields)
		return false
	}
	return true
}
