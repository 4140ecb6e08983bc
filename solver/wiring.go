package solver

import (
	"fmt"

	"github.com/routeforge/vrp/config"
	"github.com/routeforge/vrp/constraint"
	"github.com/routeforge/vrp/evolution"
	"github.com/routeforge/vrp/insertion"
	"github.com/routeforge/vrp/model"
	"github.com/routeforge/vrp/ruin"
)

func paramInt(params map[string]interface{}, key string, def int) int {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

func paramFloat(params map[string]interface{}, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// buildRuinOperator resolves one §4.4 ruin method by name into its
// ruin.Operator, reading mw.Parameters for the method's tunables.
func buildRuinOperator(mw config.MethodWeight) (ruin.Operator, error) {
	p := mw.Parameters
	switch mw.Name {
	case "random_job":
		return ruin.RandomJobRemoval{}, nil
	case "random_route":
		return ruin.RandomRouteRemoval{RMin: paramInt(p, "r_min", 1), RMax: paramInt(p, "r_max", 1)}, nil
	case "worst_job":
		return ruin.WorstJobRemoval{WorstSkip: paramInt(p, "worst_skip", 2), NeighbourRange: paramInt(p, "neighbour_range", 2)}, nil
	case "neighbour":
		return ruin.NeighbourRemoval{K: paramInt(p, "k", 5)}, nil
	case "cluster":
		return ruin.ClusterRemoval{Size: paramInt(p, "size", 5)}, nil
	case "sisr":
		return ruin.AdjustedStringRemoval{
			LMax:  paramInt(p, "l_max", 10),
			Cavg:  paramFloat(p, "cavg", 5),
			Alpha: paramFloat(p, "alpha", 0.01),
		}, nil
	case "noop":
		return ruin.Noop{}, nil
	default:
		return nil, fmt.Errorf("solver: unknown ruin method %q", mw.Name)
	}
}

// buildEngine resolves one §4.3 recreate strategy by name into an
// insertion.Engine wired to problem/pipeline.
func buildEngine(problem *model.Problem, pipeline *constraint.Pipeline, mw config.MethodWeight) (*insertion.Engine, error) {
	p := mw.Parameters
	var reducer insertion.JobMapReducer
	switch mw.Name {
	case "best":
		reducer = insertion.BestReducer{}
	case "regret_k":
		reducer = insertion.RegretKReducer{K: paramInt(p, "k", 2)}
	case "skip_best":
		reducer = insertion.SkipBestReducer{Start: paramInt(p, "start", 1), End: paramInt(p, "end", 3)}
	case "blinks":
		reducer = insertion.BlinksReducer{Probability: paramFloat(p, "probability", 0.1)}
	default:
		return nil, fmt.Errorf("solver: unknown recreate method %q", mw.Name)
	}

	return insertion.NewEngine(problem, pipeline, insertion.AllSelector{}, reducer), nil
}

// flatten walks cfg.Mutation's composite/local_search/ruin_recreate tree
// (§6) and returns one evolution.Mutation per leaf, weighted by the
// product of every ancestor node's Weight (composite weights scale their
// children; a ruin_recreate leaf additionally contributes one Mutation
// per (ruin, recreate) pair weighted by that pair's own product).
func flatten(problem *model.Problem, pipeline *constraint.Pipeline, node config.MutationConfig, inherited float64, counter *int) ([]evolution.WeightedMutation, error) {
	weight := node.Weight
	if weight <= 0 {
		weight = 1
	}
	weight *= inherited

	var out []evolution.WeightedMutation

	if node.LocalSearch != nil {
		for _, m := range node.LocalSearch.Methods {
			*counter++
			out = append(out, evolution.WeightedMutation{
				Mutation: evolution.Mutation{
					Name:        fmt.Sprintf("local_search#%d:%s", *counter, m.Name),
					Ruin:        ruin.Noop{},
					LocalSearch: pipeline,
				},
				Weight: weight * nonZero(m.Weight),
			})
		}
	}

	if node.RuinRecreate != nil {
		for _, rm := range node.RuinRecreate.Ruin {
			op, err := buildRuinOperator(rm)
			if err != nil {
				return nil, err
			}
			for _, cm := range node.RuinRecreate.Recreate {
				engine, err := buildEngine(problem, pipeline, cm)
				if err != nil {
					return nil, err
				}
				*counter++
				out = append(out, evolution.WeightedMutation{
					Mutation: evolution.Mutation{
						Name:   fmt.Sprintf("ruin_recreate#%d:%s+%s", *counter, rm.Name, cm.Name),
						Ruin:   op,
						Engine: engine,
					},
					Weight: weight * nonZero(rm.Weight) * nonZero(cm.Weight),
				})
			}
		}
	}

	for _, child := range node.Composite {
		childMutations, err := flatten(problem, pipeline, child, weight, counter)
		if err != nil {
			return nil, err
		}
		out = append(out, childMutations...)
	}

	return out, nil
}

func nonZero(w float64) float64 {
	if w <= 0 {
		return 1
	}

	return w
}

// BuildMutations flattens cfg.Mutation into the evolution.Config inputs:
// the ordered Mutation list and a map from each Mutation's Name to its
// weight, which the bandit samples over.
func BuildMutations(problem *model.Problem, pipeline *constraint.Pipeline, cfg *config.Config) ([]evolution.Mutation, map[string]float64, error) {
	counter := 0
	weighted, err := flatten(problem, pipeline, cfg.Mutation, 1, &counter)
	if err != nil {
		return nil, nil, err
	}

	mutations := make([]evolution.Mutation, len(weighted))
	weights := make(map[string]float64, len(weighted))
	for i, wm := range weighted {
		mutations[i] = wm.Mutation
		weights[wm.Mutation.Name] = wm.Weight
	}

	return mutations, weights, nil
}

// BuildPipeline returns the standard constraint.Pipeline for problem,
// scoped to the given routing profile (§4.2).
func BuildPipeline(problem *model.Problem, profile string) *constraint.Pipeline {
	return constraint.New(profile, problem.TransportCost, problem.ActivityCost, constraint.StandardFeatures(problem)...)
}
