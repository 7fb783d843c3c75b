package input

// Latch turns a polled held/released signal into one-shot presses. It
// remembers the previous sample only, so it fires once per released->held
// transition no matter how long the key stays down.
type Latch struct {
	held bool
}

// Rising records the current sample and reports whether it is a press edge.
func (l *Latch) Rising(held bool) bool {
	edge := held && !l.held
	l.held = held
	return edge
}
