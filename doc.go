// Package vrp is a ruin-and-recreate metaheuristic solver for the
// multi-constraint vehicle routing problem: pickups and deliveries, time
// windows, multiple capacity dimensions, vehicle shifts with breaks and
// reloads, and job/vehicle locks.
//
// A Problem (model package) is repeatedly mutated by an evolutionary loop
// (evolution package) that alternates ruin (ruin package) and recreate
// (insertion package) moves over a population of candidate solutions
// (solution package), guided by a constraint pipeline (constraint package)
// and a route state store (state package). solver ties the pieces together
// behind a single Solve entry point.
package vrp
