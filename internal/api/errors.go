// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/antoineeeHao/itinera/internal/budget"
	"github.com/antoineeeHao/itinera/internal/recommend"
)

// ErrUnknownItem is returned for price queries naming no catalog item.
var ErrUnknownItem = errors.New("unknown item")

// respondPlanningError maps planner errors onto HTTP responses.
func respondPlanningError(rw *ResponseWriter, err error) {
	var infeasible *budget.InfeasibleError
	switch {
	case errors.As(err, &infeasible):
		rw.ErrorWithDetails(http.StatusUnprocessableEntity, ErrCodeBudgetInfeasible, infeasible.Error(), infeasible)
	case errors.Is(err, budget.ErrUnknownDestination):
		rw.NotFound(err.Error())
	case errors.Is(err, recommend.ErrInvalidRequest), errors.Is(err, budget.ErrInvalidRequest):
		rw.BadRequest(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		rw.ServiceUnavailable("request canceled before planning finished")
	default:
		rw.InternalError(err)
	}
}
