package cpu

// Labels maps label names to instruction addresses.
type Labels map[string]Word

// ResolveLabels collects the labels of a program in a single pass. A label
// addresses the ordinal of the instruction it decorates. When a name is used
// more than once, the last one wins.
func ResolveLabels(insts []Instruction) (labels Labels) {
	labels = make(Labels, len(insts))

	for n, inst := range insts {
		if inst.Label == nil {
			continue
		}
		labels[inst.Label.Name] = Wrap(uint8(n))
	}

	return
}

// Resolve looks up the address of a label.
func (labels Labels) Resolve(name string) (addr Word, err error) {
	addr, ok := labels[name]
	if !ok {
		err = ErrLabelMissing(name)
		return
	}

	return
}
