// Itinera - European Travel Recommendation and Budget Planning
// Copyright 2026 The Itinera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/antoineeeHao/itinera

package budget

import (
	"time"

	"github.com/antoineeeHao/itinera/internal/models"
)

// schedule lays activities out over days in selection order. Each activity
// goes to the first day with room under both caps, or to the least-loaded
// day when none has room.
func schedule(acts []models.PlannedActivity, start time.Time, days, perDay int, hoursPerDay float64) []models.DayPlan {
	if days < 1 {
		days = 1
	}
	plan := make([]models.DayPlan, days)
	for i := range plan {
		plan[i] = models.DayPlan{
			Day:        i + 1,
			Date:       models.DateKey(start.AddDate(0, 0, i)),
			Activities: []string{},
		}
	}

	for i := range acts {
		a := &acts[i]
		day := -1
		for d := range plan {
			if len(plan[d].Activities) < perDay && plan[d].Hours+a.Hours <= hoursPerDay {
				day = d
				break
			}
		}
		if day < 0 {
			day = leastLoaded(plan)
		}
		plan[day].Activities = append(plan[day].Activities, a.ID)
		plan[day].Hours += a.Hours
	}
	return plan
}

func leastLoaded(plan []models.DayPlan) int {
	best := 0
	for d := 1; d < len(plan); d++ {
		if plan[d].Hours < plan[best].Hours ||
			(plan[d].Hours == plan[best].Hours && len(plan[d].Activities) < len(plan[best].Activities)) {
			best = d
		}
	}
	return best
}
