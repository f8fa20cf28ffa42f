package sat

import "testing"

func TestEMA_firstSampleIsExact(t *testing.T) {
	e := newEMA(0.9)
	e.add(10)
	if got, want := e.get(), 10.0; got != want {
		t.Errorf("get() after first sample = %v, want %v", got, want)
	}
}

func TestEMA_decaysTowardNewSamples(t *testing.T) {
	e := newEMA(0.5)
	e.add(10)
	e.add(0)
	if got, want := e.get(), 5.0; got != want {
		t.Errorf("get() = %v, want %v", got, want)
	}
}
