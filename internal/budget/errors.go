// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package budget

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is matched by every *InfeasibleError.
	ErrInfeasible = errors.New("no plan fits the budget")

	// ErrInvalidRequest is wrapped by errors for unusable optimizer requests.
	ErrInvalidRequest = errors.New("invalid plan request")

	// ErrUnknownDestination is returned for destination IDs not in the catalog.
	ErrUnknownDestination = errors.New("unknown destination")
)

// InfeasibleError reports that even the cheapest allowed flight and lodging
// combination exceeds the budget.
type InfeasibleError struct {
	DestinationID string  `json:"destination_id"`
	Budget        float64 `json:"budget"`
	CheapestCost  float64 `json:"cheapest_cost"`
	Shortfall     float64 `json:"shortfall"`
	Currency      string  `json:"currency"`
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no plan for %s fits budget %.2f %s: cheapest option costs %.2f, short by %.2f",
		e.DestinationID, e.Budget, e.Currency, e.CheapestCost, e.Shortfall)
}

// Is reports whether target is ErrInfeasible.
func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}
