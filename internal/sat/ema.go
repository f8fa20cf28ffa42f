package sat

// ema is an exponential moving average, used here purely as a diagnostic:
// the search driver feeds it the size of every learned clause so progress
// reports can show whether recent conflicts are producing short (good) or
// long (unhelpful) clauses. It plays no role in the reduction schedule
// itself, which is activity-based per spec §4.5.
type ema struct {
	decay float64
	value float64
	ready bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.ready {
		e.ready = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *ema) get() float64 {
	return e.value
}
