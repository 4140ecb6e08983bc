// Package feasibility is a §10 enrichment, not a named §1-§9 module: a
// pre-solve necessary-condition check that rejects problem instances no
// full solve could ever serve, before the evolution loop spends any
// generations on them. It builds a bipartite source/vehicle/job/sink
// capacitated graph and computes its max flow via flow.Dinic rather than
// a bespoke assignment solver, giving the adapted flow package a real
// caller beyond model.JobIndex's distance graph.
package feasibility

import (
	"context"
	"fmt"

	"github.com/routeforge/vrp/core"
	"github.com/routeforge/vrp/flow"
	"github.com/routeforge/vrp/model"
)

const (
	source = "__source__"
	sink   = "__sink__"
)

// Report is the outcome of a Check call.
type Report struct {
	// Feasible is true when the bipartite flow bound could not rule the
	// instance out. False is conclusive (the instance cannot be served);
	// true is only necessary, not sufficient — the full solve may still
	// leave jobs unassigned for reasons this bound does not model
	// (time windows, multi-task ordering, route count limits).
	Feasible bool
	// TotalDemand is the sum of every job's total demand across all
	// capacity dimensions.
	TotalDemand int64
	// ServableDemand is the max-flow value: the largest amount of demand
	// the fleet could serve if capacity and skills were the only
	// constraints.
	ServableDemand int64
	// Unreachable lists jobs no vehicle in the fleet is skill-compatible
	// with, regardless of capacity (a separate, always-conclusive check).
	Unreachable []string
}

// Check builds a source -> vehicle -> job -> sink capacitated graph and
// computes its max flow via flow.Dinic, a bipartite capacity/skill flow
// bound:
//
//   - source -> vehicle, capacity = vehicle's summed capacity vector
//     (every dimension collapsed to one scalar bound, an approximation
//     documented in DESIGN.md) times the vehicle's shift count.
//   - vehicle -> job, capacity = job's summed demand, present only when
//     the vehicle's skills are a superset of the job's required skills.
//   - job -> sink, capacity = job's summed demand.
//
// If the resulting max flow is strictly less than the sum of all job
// demand, the instance is infeasible: no assignment of jobs to vehicles
// can satisfy every job's capacity requirement, independent of routing,
// time windows, or ordering.
func Check(ctx context.Context, problem *model.Problem) (*Report, error) {
	report := &Report{}

	g := core.NewMixedGraph(core.WithDirected(true), core.WithWeighted())
	if err := g.AddVertex(source); err != nil {
		return nil, fmt.Errorf("feasibility: %w", err)
	}
	if err := g.AddVertex(sink); err != nil {
		return nil, fmt.Errorf("feasibility: %w", err)
	}

	for _, v := range problem.Fleet.Vehicles {
		if err := g.AddVertex("v:" + v.ID); err != nil {
			return nil, fmt.Errorf("feasibility: %w", err)
		}
		cap := sumDemand(v.Capacity) * int64(len(v.Shifts))
		if cap <= 0 {
			continue
		}
		if _, err := g.AddEdge(source, "v:"+v.ID, cap); err != nil {
			return nil, fmt.Errorf("feasibility: %w", err)
		}
	}

	for _, job := range problem.Jobs {
		jobID := job.JobID()
		demand := jobDemand(job)
		report.TotalDemand += demand

		if err := g.AddVertex("j:" + jobID); err != nil {
			return nil, fmt.Errorf("feasibility: %w", err)
		}
		if demand <= 0 {
			continue
		}
		if _, err := g.AddEdge("j:"+jobID, sink, demand); err != nil {
			return nil, fmt.Errorf("feasibility: %w", err)
		}

		skills := jobSkills(job)
		reachable := false
		for _, v := range problem.Fleet.Vehicles {
			if !v.HasSkills(skills) {
				continue
			}
			reachable = true
			if sumDemand(v.Capacity) <= 0 {
				continue
			}
			if _, err := g.AddEdge("v:"+v.ID, "j:"+jobID, demand); err != nil {
				return nil, fmt.Errorf("feasibility: %w", err)
			}
		}
		if !reachable {
			report.Unreachable = append(report.Unreachable, jobID)
		}
	}

	maxFlow, _, err := flow.Dinic(g, source, sink, flow.FlowOptions{})
	if err != nil {
		return nil, fmt.Errorf("feasibility: %w", err)
	}
	report.ServableDemand = int64(maxFlow)
	report.Feasible = len(report.Unreachable) == 0 && report.ServableDemand >= report.TotalDemand

	return report, nil
}

func sumDemand(v []int64) int64 {
	var total int64
	for _, d := range v {
		total += d
	}

	return total
}

func jobDemand(job model.Job) int64 {
	var total int64
	for _, task := range job.Tasks() {
		total += sumDemand(task.Dimens().Demand())
	}

	return total
}

func jobSkills(job model.Job) []string {
	if skills := job.Dimens().Skills(); len(skills) > 0 {
		return skills
	}
	var skills []string
	for _, task := range job.Tasks() {
		skills = append(skills, task.Dimens().Skills()...)
	}

	return skills
}
