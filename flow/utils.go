package flow

import (
	"context"
	"fmt"

	"github.com/routeforge/vrp/core"
)

// buildCapMap flattens g into capMap[u][v] = capacity(u->v), aggregating
// nothing (the graphs Dinic is called on here never carry parallel edges)
// and dropping entries at or below opts.Epsilon.
func buildCapMap(g *core.Graph, opts FlowOptions) (map[string]map[string]float64, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	capMap := make(map[string]map[string]float64, len(vertices))
	for _, u := range vertices {
		capMap[u] = make(map[string]float64)
	}

	for _, u := range vertices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}

		for _, e := range neighbors {
			if e.From == e.To {
				continue
			}
			c := float64(e.Weight)
			if c < -opts.Epsilon {
				return nil, EdgeError{From: e.From, To: e.To, Cap: c}
			}
			capMap[u][e.To] += c
		}

		for v, total := range capMap[u] {
			if total <= opts.Epsilon {
				delete(capMap[u], v)
			}
		}
	}

	return capMap, nil
}

// buildCoreResidualFromCapMap builds the residual core.Graph Dinic
// returns, inheriting g's vertex set and directed/weighted configuration.
func buildCoreResidualFromCapMap(capMap map[string]map[string]float64, g *core.Graph, opts FlowOptions) (*core.Graph, error) {
	residual := g.CloneEmpty()

	for u, inner := range capMap {
		for v, c := range inner {
			if c > opts.Epsilon {
				if _, err := residual.AddEdge(u, v, int64(c)); err != nil {
					return nil, fmt.Errorf("flow: residual edge %q->%q: %w", u, v, err)
				}
			}
		}
	}

	return residual, nil
}
