package model

// Well-known Dimens keys used by the standard feature set (constraint
// package) and by the default ruin/insertion selectors. Problem readers are
// free to add their own keys; Dimens is an open, string-keyed bag on
// purpose (§3).
const (
	DimenJobID      = "job_id"
	DimenJobType    = "job_type"
	DimenDemand     = "demand"
	DimenSkills     = "skills"
	DimenPriority   = "priority"
	DimenOrder      = "order"
	DimenVehicleID  = "vehicle_id"
	DimenShiftIndex = "shift_index"
	DimenGroup      = "group"
)

// Dimens is an extensible, string-keyed attribute bag carried by jobs,
// vehicles and activities. It intentionally has no fixed schema: features
// read the keys they understand and ignore the rest.
type Dimens map[string]interface{}

// NewDimens returns an empty, ready-to-use Dimens.
func NewDimens() Dimens {
	return make(Dimens)
}

// Clone returns a shallow copy of d; values are not deep-copied, matching
// the teacher's Vertex.Metadata semantics (core/types.go) — Dimens values
// are treated as immutable once set.
func (d Dimens) Clone() Dimens {
	if d == nil {
		return nil
	}
	out := make(Dimens, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// GetString returns the string value at key, or ("", false) if absent or
// of a different type.
func (d Dimens) GetString(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)

	return s, ok
}

// GetInt returns the int value at key, or (0, false) if absent or of a
// different type.
func (d Dimens) GetInt(key string) (int, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	i, ok := v.(int)

	return i, ok
}

// GetFloat64 returns the float64 value at key, or (0, false) if absent or
// of a different type.
func (d Dimens) GetFloat64(key string) (float64, bool) {
	v, ok := d[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)

	return f, ok
}

// Demand returns the demand vector stored at DimenDemand, or nil if the
// job carries none (e.g. a break or reload job).
func (d Dimens) Demand() []int64 {
	v, ok := d[DimenDemand]
	if !ok {
		return nil
	}
	demand, _ := v.([]int64)

	return demand
}

// Skills returns the skill set stored at DimenSkills, or nil.
func (d Dimens) Skills() []string {
	v, ok := d[DimenSkills]
	if !ok {
		return nil
	}
	skills, _ := v.([]string)

	return skills
}
