package motion

import (
	"fmt"

	"github.com/san-kum/bodykin/internal/body"
)

// List is an ordered collection of motions, index-aligned with a body
// list. Appending does not validate against any body list; dimension
// mismatches surface when state or velocity functions are called
// against mismatched bodies.
type List []Motion

// PushBack appends a motion to the list.
func (l *List) PushBack(m Motion) {
	*l = append(*l, m)
}

func checkPairing(bodies body.List, motions List) error {
	if len(bodies) != len(motions) {
		return fmt.Errorf("motion: %d bodies paired with %d motions", len(bodies), len(motions))
	}
	return nil
}

// ListState concatenates, in list order, each body's motion state under
// its paired motion.
func ListState(bodies body.List, motions List) (State, error) {
	if err := checkPairing(bodies, motions); err != nil {
		return nil, err
	}
	var out State
	for i, m := range motions {
		out = append(out, m.MotionState(bodies[i])...)
	}
	return out, nil
}

// ListVelocity concatenates, in list order, each body's motion velocity
// at time t.
func ListVelocity(bodies body.List, motions List, t float64) (State, error) {
	if err := checkPairing(bodies, motions); err != nil {
		return nil, err
	}
	var out State
	for i, m := range motions {
		v, err := m.MotionVelocity(bodies[i], t)
		if err != nil {
			return nil, fmt.Errorf("motion: body %d: %w", i, err)
		}
		out = append(out, v...)
	}
	return out, nil
}

// StateDim is the total state length of the paired lists.
func StateDim(bodies body.List, motions List) (int, error) {
	if err := checkPairing(bodies, motions); err != nil {
		return 0, err
	}
	n := 0
	for i, m := range motions {
		n += m.StateDim(bodies[i])
	}
	return n, nil
}

// UpdateBodies splits the flat state into per-body chunks, sized by
// each paired motion's own state length in list order, and dispatches
// the scalar updates. The state must be consumed exactly; leftover or
// missing values are a dimension error.
func UpdateBodies(bodies body.List, state State, motions List) (body.List, error) {
	if err := checkPairing(bodies, motions); err != nil {
		return nil, err
	}
	offset := 0
	for i, m := range motions {
		dim := m.StateDim(bodies[i])
		if offset+dim > len(state) {
			want, _ := StateDim(bodies, motions)
			return nil, DimError{Op: "list update", Want: want, Got: len(state)}
		}
		if err := m.UpdateBody(bodies[i], state[offset:offset+dim]); err != nil {
			return nil, fmt.Errorf("motion: body %d: %w", i, err)
		}
		offset += dim
	}
	if offset != len(state) {
		return nil, DimError{Op: "list update", Want: offset, Got: len(state)}
	}
	return bodies, nil
}
