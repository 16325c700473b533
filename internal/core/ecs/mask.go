package ecs

// Mask is a set of up to 256 component types, one bit per ComponentType.
// It describes an entity's composition and a filter's required types.
type Mask [4]uint64

func MaskOf(types ...ComponentType) Mask {
	var m Mask
	for _, t := range types {
		m.Set(t)
	}
	return m
}

func (m *Mask) Set(t ComponentType) {
	m[t>>6] |= 1 << (t & 63)
}

func (m *Mask) Clear(t ComponentType) {
	m[t>>6] &^= 1 << (t & 63)
}

func (m Mask) Has(t ComponentType) bool {
	return m[t>>6]&(1<<(t&63)) != 0
}

// Contains reports whether every type in sub is also in m.
func (m Mask) Contains(sub Mask) bool {
	return m[0]&sub[0] == sub[0] &&
		m[1]&sub[1] == sub[1] &&
		m[2]&sub[2] == sub[2] &&
		m[3]&sub[3] == sub[3]
}

func (m Mask) IsEmpty() bool {
	return m == Mask{}
}

// Types lists the set types in ascending order.
func (m Mask) Types() []ComponentType {
	out := make([]ComponentType, 0, 4)
	for i := 0; i < MaxComponentTypes; i++ {
		if m.Has(ComponentType(i)) {
			out = append(out, ComponentType(i))
		}
	}
	return out
}
