package core

// ColorSet is the enumerated set of step color tags accepted by the
// validator. Membership is the only check; what a color renders as is a
// stylesheet concern.
type ColorSet struct {
	names   []string
	members map[string]struct{}
}

func NewColorSet(names ...string) ColorSet {
	set := ColorSet{members: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if _, ok := set.members[name]; ok {
			continue
		}
		set.members[name] = struct{}{}
		set.names = append(set.names, name)
	}
	return set
}

func DefaultColors() ColorSet {
	return NewColorSet("blue", "green", "orange", "purple", "red", "gray")
}

func (s ColorSet) Contains(name string) bool {
	_, ok := s.members[name]
	return ok
}

func (s ColorSet) Names() []string {
	return append([]string(nil), s.names...)
}

func (s ColorSet) Empty() bool {
	return len(s.names) == 0
}
