package constraint

import (
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/state"
)

// Skills forbids inserting a job whose required skill set is not a subset
// of the vehicle's skills (§4.2 "Skills").
type Skills struct{}

// NewSkills returns the Skills feature.
func NewSkills() Feature {
	return Feature{Name: "skills", Constraint: &Skills{}}
}

// Evaluate implements Constraint.
func (Skills) Evaluate(mc *MoveContext) *Violation {
	if mc.Kind != MoveRoute {
		return nil
	}
	required := jobSkills(mc.Job)
	if len(required) == 0 {
		return nil
	}
	vehicle := mc.RouteCtx.Route.Actor.Vehicle
	if !vehicle.HasSkills(required) {
		return &Violation{Code: state.ReasonSkills, Stopped: true}
	}

	return nil
}

func jobSkills(job model.Job) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range job.Dimens().Skills() {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
