package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/routeforge/vrp/matrix"
	"github.com/routeforge/vrp/model"
)

// The structs below are the minimal JSON dialect this driver accepts — a
// direct field-for-field rendering of §6's "Input to core" shape.
// Serialization dialect design is explicitly out of the core's scope; this
// is the thin, single-purpose reader the CLI needs to exercise it at all.

type timeSpanDTO struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Absolute bool    `json:"absolute"`
}

type placeDTO struct {
	Location *int          `json:"location"`
	Duration float64       `json:"duration"`
	Times    []timeSpanDTO `json:"times"`
}

type taskDTO struct {
	Places []placeDTO `json:"places"`
	Demand []int64    `json:"demand"`
	Tag    string     `json:"tag"`
}

type jobDTO struct {
	ID         string   `json:"id"`
	Tasks      []taskDTO `json:"tasks"`
	Priority   int      `json:"priority"`
	Skills     []string `json:"skills"`
	Group      string   `json:"group"`
	JobType    string   `json:"job_type"`
}

type breakDTO struct {
	Place  placeDTO `json:"place"`
	Policy string   `json:"policy"`
}

type reloadDTO struct {
	Place placeDTO `json:"place"`
}

type shiftDTO struct {
	Start   placeDTO    `json:"start"`
	End     *placeDTO   `json:"end"`
	Breaks  []breakDTO  `json:"breaks"`
	Reloads []reloadDTO `json:"reloads"`
}

type vehicleCostsDTO struct {
	Fixed       float64 `json:"fixed"`
	PerDistance float64 `json:"per_distance"`
	PerDriving  float64 `json:"per_driving"`
	PerWaiting  float64 `json:"per_waiting"`
	PerService  float64 `json:"per_service"`
}

type vehicleLimitsDTO struct {
	MaxDistance float64 `json:"max_distance"`
	MaxDuration float64 `json:"max_duration"`
	TourSize    int     `json:"tour_size"`
	MinTourSize int     `json:"min_tour_size"`
}

type vehicleDTO struct {
	ID        string           `json:"id"`
	ProfileID string           `json:"profile_id"`
	Costs     vehicleCostsDTO  `json:"costs"`
	Capacity  []int64          `json:"capacity"`
	Skills    []string         `json:"skills"`
	Shifts    []shiftDTO       `json:"shifts"`
	Limits    vehicleLimitsDTO `json:"limits"`
}

type goalTierDTO struct {
	Name      string   `json:"name"`
	Threshold *float64 `json:"threshold"`
}

type matrixDTO struct {
	ProfileID string      `json:"profile_id"`
	Distance  [][]float64 `json:"distance"`
	Duration  [][]float64 `json:"duration"`
}

type problemDTO struct {
	Vehicles []vehicleDTO `json:"vehicles"`
	Jobs     []jobDTO     `json:"jobs"`
	Matrices []matrixDTO  `json:"matrices"`
	Goal     []goalTierDTO `json:"goal"`
}

func toPlace(p placeDTO) model.Place {
	var loc *model.Location
	if p.Location != nil {
		l := model.Location(*p.Location)
		loc = &l
	}
	spans := make([]model.TimeSpan, len(p.Times))
	for i, t := range p.Times {
		spans[i] = model.TimeSpan{Absolute: t.Absolute, Start: t.Start, End: t.End}
	}

	return model.Place{Location: loc, Duration: p.Duration, Times: spans}
}

func toShift(s shiftDTO) model.Shift {
	var end *model.Place
	if s.End != nil {
		p := toPlace(*s.End)
		end = &p
	}
	breaks := make([]model.Break, len(s.Breaks))
	for i, b := range s.Breaks {
		policy := model.SkipIfNoIntersection
		if b.Policy == "skip_if_arrival_before_end" {
			policy = model.SkipIfArrivalBeforeEnd
		}
		breaks[i] = model.Break{Place: toPlace(b.Place), Policy: policy}
	}
	reloads := make([]model.Reload, len(s.Reloads))
	for i, r := range s.Reloads {
		reloads[i] = model.Reload{Place: toPlace(r.Place)}
	}

	return model.Shift{Start: toPlace(s.Start), End: end, Breaks: breaks, Reloads: reloads}
}

func toVehicle(v vehicleDTO) *model.Vehicle {
	shifts := make([]model.Shift, len(v.Shifts))
	for i, s := range v.Shifts {
		shifts[i] = toShift(s)
	}

	return &model.Vehicle{
		ID:        v.ID,
		ProfileID: v.ProfileID,
		Costs: model.VehicleCosts{
			Fixed:       v.Costs.Fixed,
			PerDistance: v.Costs.PerDistance,
			PerDriving:  v.Costs.PerDriving,
			PerWaiting:  v.Costs.PerWaiting,
			PerService:  v.Costs.PerService,
		},
		Capacity: v.Capacity,
		Skills:   v.Skills,
		Shifts:   shifts,
		Limits: model.VehicleLimits{
			MaxDistance: v.Limits.MaxDistance,
			MaxDuration: v.Limits.MaxDuration,
			TourSize:    v.Limits.TourSize,
			MinTourSize: v.Limits.MinTourSize,
		},
	}
}

func toJob(j jobDTO) *model.Single {
	attrs := model.NewDimens()
	if j.Priority != 0 {
		attrs[model.DimenPriority] = j.Priority
	}
	if len(j.Skills) > 0 {
		attrs[model.DimenSkills] = j.Skills
	}
	if j.Group != "" {
		attrs[model.DimenGroup] = j.Group
	}
	if j.JobType != "" {
		attrs[model.DimenJobType] = j.JobType
	}

	var places []model.Place
	var demand []int64
	for _, t := range j.Tasks {
		for _, p := range t.Places {
			places = append(places, toPlace(p))
		}
		if t.Demand != nil {
			demand = t.Demand
		}
	}
	if demand != nil {
		attrs[model.DimenDemand] = demand
	}

	return &model.Single{ID: j.ID, Places: places, Attrs: attrs}
}

// buildTransportCost builds a MatrixTransportCost from the DTO's per-profile
// dense tables.
func buildTransportCost(matrices []matrixDTO) (model.TransportCost, error) {
	profiles := make(map[string]model.ProfileMatrix, len(matrices))
	for _, m := range matrices {
		dist, err := denseFrom(m.Distance)
		if err != nil {
			return nil, fmt.Errorf("profile %s distance: %w", m.ProfileID, err)
		}
		dur, err := denseFrom(m.Duration)
		if err != nil {
			return nil, fmt.Errorf("profile %s duration: %w", m.ProfileID, err)
		}
		profiles[m.ProfileID] = model.ProfileMatrix{Distance: dist, Duration: dur}
	}

	return model.NewMatrixTransportCost(profiles)
}

func denseFrom(rows [][]float64) (*matrix.Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if err := d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

func toGoal(tiers []goalTierDTO) model.Goal {
	out := make([]model.GoalTier, len(tiers))
	for i, t := range tiers {
		out[i] = model.GoalTier{Name: t.Name, Threshold: t.Threshold}
	}

	return model.Goal{Tiers: out}
}

// LoadProblem reads and validates a problem document from path, building a
// model.Problem ready for solver.Solve.
func LoadProblem(path string) (*model.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem file: %w", err)
	}
	var doc problemDTO
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse problem file: %w", err)
	}

	vehicles := make([]*model.Vehicle, len(doc.Vehicles))
	for i, v := range doc.Vehicles {
		vehicles[i] = toVehicle(v)
	}
	fleet, err := model.NewFleet(vehicles)
	if err != nil {
		return nil, err
	}

	jobs := make([]model.Job, len(doc.Jobs))
	for i, j := range doc.Jobs {
		jobs[i] = toJob(j)
	}

	transport, err := buildTransportCost(doc.Matrices)
	if err != nil {
		return nil, err
	}

	goal := toGoal(doc.Goal)
	if len(goal.Tiers) == 0 {
		goal = model.Goal{Tiers: []model.GoalTier{{Name: "unassigned"}, {Name: "routes"}, {Name: "cost"}}}
	}

	return model.NewProblem(fleet, jobs, transport, model.DefaultActivityCost{}, nil, goal)
}
