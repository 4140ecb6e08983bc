package solver

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/solution"
	"github.com/routeforge/vrp/state"
)

// ActivitySchedule is one stop's resolved timing (§6 "schedule{arrival,
// departure}").
type ActivitySchedule struct {
	Arrival   float64
	Departure float64
}

// ActivityOutput is one §6 "activities[]" entry.
type ActivityOutput struct {
	JobID        string
	ActivityType string
	Location     *model.Location
	Window       *model.TimeWindow
}

// Stop is one §6 "stops[]" entry: a resolved place visited once, with its
// schedule, running load, and the activities realized there (currently
// always exactly one, since this module does not merge co-located
// activities into a single stop — a documented simplification).
type Stop struct {
	Location           *model.Location
	Schedule           ActivitySchedule
	Load               []int64
	DistanceFromStart  float64
	Activities         []ActivityOutput
}

// RouteOutput is one §6 "For each tour" entry.
type RouteOutput struct {
	VehicleID  string
	TypeID     string
	ShiftIndex int
	Stops      []Stop
}

// Statistics is the §6 "Statistics" aggregate across every route.
type Statistics struct {
	Cost     float64
	Distance float64
	Duration float64
	Driving  float64
	Waiting  float64
}

// Violation is one §6 "violations[]" entry.
type Violation struct {
	JobID   string
	Code    string
	Message string
}

// Output is the full §6 "Output from core" document.
type Output struct {
	Routes      []RouteOutput
	Statistics  Statistics
	Unassigned  []state.UnassignedJob
	Violations  []Violation
	Generations int
}

// locOf returns an activity's resolved Location, or (0, false) for a
// location-less stop (e.g. an unresolved break).
func locOf(a *solution.Activity) (model.Location, bool) {
	if a.Place.Location == nil {
		return 0, false
	}

	return *a.Place.Location, true
}

func activityType(a *solution.Activity) string {
	switch a.Kind {
	case solution.KindStart:
		return "departure"
	case solution.KindEnd:
		return "arrival"
	case solution.KindBreak:
		return "break"
	case solution.KindReload:
		return "reload"
	case solution.KindJob:
		if jobType, ok := a.Job.Attrs.GetString(model.DimenJobType); ok && jobType != "" {
			return jobType
		}

		return "service"
	default:
		return "service"
	}
}

// BuildOutput translates sc into the §6 output shape.
func BuildOutput(problem *model.Problem, sc *state.SolutionContext, generations int) *Output {
	out := &Output{Generations: generations}

	for _, rc := range sc.Routes {
		tour := rc.Route.Tour
		if tour.JobCount() == 0 {
			continue
		}
		actor := rc.Route.Actor
		route := RouteOutput{
			VehicleID:  actor.VehicleID,
			TypeID:     actor.Vehicle.ProfileID,
			ShiftIndex: actor.ShiftIdx,
		}

		profile := actor.Vehicle.ProfileID
		var distanceAccum, drivingAccum float64
		for i := 0; i < tour.Len(); i++ {
			act := tour.At(i)
			load := rc.State.ActivityCapacity(i, state.KeyCurrentCapacity)

			if i > 0 {
				prev := tour.At(i - 1)
				if prevLoc, ok := locOf(prev); ok {
					if curLoc, ok2 := locOf(act); ok2 {
						distanceAccum += problem.TransportCost.Distance(profile, prevLoc, curLoc)
						drivingAccum += problem.TransportCost.Duration(profile, prevLoc, curLoc)
					}
				}
			}

			w := act.Place.Window
			stop := Stop{
				Location:          act.Place.Location,
				Schedule:          ActivitySchedule{Arrival: act.Schedule.Arrival, Departure: act.Schedule.Departure},
				Load:              load,
				DistanceFromStart: distanceAccum,
				Activities: []ActivityOutput{{
					JobID:        act.JobID(),
					ActivityType: activityType(act),
					Location:     act.Place.Location,
					Window:       &w,
				}},
			}
			route.Stops = append(route.Stops, stop)
		}

		if total, ok := rc.State.RouteFloat(state.KeyTotalDistance); ok {
			out.Statistics.Distance += total
		}
		if total, ok := rc.State.RouteFloat(state.KeyTotalDuration); ok {
			out.Statistics.Duration += total
		}
		if waiting, ok := rc.State.ActivityFloat(0, state.KeyWaitingTime); ok {
			out.Statistics.Waiting += waiting
		}
		out.Statistics.Driving += drivingAccum

		out.Statistics.Cost += routeCost(problem, rc)

		out.Routes = append(out.Routes, route)
	}

	for _, u := range sc.Unassigned {
		out.Unassigned = append(out.Unassigned, u)
	}
	for _, job := range sc.Ignored {
		out.Violations = append(out.Violations, Violation{
			JobID:   job.JobID(),
			Code:    "IGNORED_BY_TRANSITION",
			Message: "dropped by a conditional feature transition (e.g. an unsatisfiable break policy)",
		})
	}

	return out
}

func routeCost(problem *model.Problem, rc *state.RouteContext) float64 {
	actor := rc.Route.Actor
	if actor == nil || actor.Vehicle == nil {
		return 0
	}
	dist, _ := rc.State.RouteFloat(state.KeyTotalDistance)
	dur, _ := rc.State.RouteFloat(state.KeyTotalDuration)
	costs := actor.Vehicle.Costs

	return costs.Fixed + costs.PerDistance*dist + costs.PerDriving*dur
}
