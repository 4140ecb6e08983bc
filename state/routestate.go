package state

// RouteState is the mapping `(key, activity-index) -> value` and
// `key -> value` for whole-route scalars described in §3/§4.1. Values are
// `interface{}` deliberately: canonical keys store float64 or
// []int64(capacity vectors) or []Interval; custom keys may store anything
// a feature chooses.
type RouteState struct {
	perActivity []map[Key]interface{}
	perRoute    map[Key]interface{}
}

// NewRouteState returns a RouteState sized for a tour of activityCount
// activities, with every per-activity slot empty.
func NewRouteState(activityCount int) *RouteState {
	rs := &RouteState{
		perActivity: make([]map[Key]interface{}, activityCount),
		perRoute:    make(map[Key]interface{}),
	}
	for i := range rs.perActivity {
		rs.perActivity[i] = make(map[Key]interface{})
	}

	return rs
}

// Resize grows or shrinks the per-activity slots to match a tour whose
// length changed (insertion/removal), preserving existing slot maps for
// indices that still exist where possible. Callers should follow a resize
// with a full state-update pass (§4.1 contract); Resize alone does not
// recompute values.
func (rs *RouteState) Resize(activityCount int) {
	if activityCount == len(rs.perActivity) {
		return
	}
	next := make([]map[Key]interface{}, activityCount)
	for i := range next {
		if i < len(rs.perActivity) {
			next[i] = rs.perActivity[i]
		} else {
			next[i] = make(map[Key]interface{})
		}
	}
	rs.perActivity = next
}

// ActivityValue returns the value at (key, index), or (nil, false).
func (rs *RouteState) ActivityValue(index int, key Key) (interface{}, bool) {
	if index < 0 || index >= len(rs.perActivity) {
		return nil, false
	}
	v, ok := rs.perActivity[index][key]

	return v, ok
}

// SetActivityValue sets the value at (key, index).
func (rs *RouteState) SetActivityValue(index int, key Key, v interface{}) {
	if index < 0 || index >= len(rs.perActivity) {
		return
	}
	rs.perActivity[index][key] = v
}

// ActivityFloat returns the float64 value at (key, index), or (0, false)
// if absent or of a different type. Convenience wrapper for the canonical
// numeric keys.
func (rs *RouteState) ActivityFloat(index int, key Key) (float64, bool) {
	v, ok := rs.ActivityValue(index, key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)

	return f, ok
}

// ActivityCapacity returns the capacity vector at (key, index), or nil.
func (rs *RouteState) ActivityCapacity(index int, key Key) []int64 {
	v, ok := rs.ActivityValue(index, key)
	if !ok {
		return nil
	}
	c, _ := v.([]int64)

	return c
}

// RouteValue returns the whole-route value at key, or (nil, false).
func (rs *RouteState) RouteValue(key Key) (interface{}, bool) {
	v, ok := rs.perRoute[key]

	return v, ok
}

// SetRouteValue sets the whole-route value at key.
func (rs *RouteState) SetRouteValue(key Key, v interface{}) {
	rs.perRoute[key] = v
}

// RouteFloat returns the whole-route float64 value at key, or (0, false).
func (rs *RouteState) RouteFloat(key Key) (float64, bool) {
	v, ok := rs.RouteValue(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)

	return f, ok
}

// Intervals returns the reload-interval partition, or nil if never set.
func (rs *RouteState) Intervals() []Interval {
	v, ok := rs.RouteValue(KeyReloadIntervals)
	if !ok {
		return nil
	}
	iv, _ := v.([]Interval)

	return iv
}

// Clone returns a deep copy of rs.
func (rs *RouteState) Clone() *RouteState {
	cp := &RouteState{
		perActivity: make([]map[Key]interface{}, len(rs.perActivity)),
		perRoute:    make(map[Key]interface{}, len(rs.perRoute)),
	}
	for i, m := range rs.perActivity {
		nm := make(map[Key]interface{}, len(m))
		for k, v := range m {
			nm[k] = v
		}
		cp.perActivity[i] = nm
	}
	for k, v := range rs.perRoute {
		cp.perRoute[k] = v
	}

	return cp
}
