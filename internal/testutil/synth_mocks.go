package testutil

import "time"

// MockClock returns a fixed time.
type MockClock struct {
	CurrentTime time.Time
}

func (m *MockClock) Now() time.Time { return m.CurrentTime }

// MockRand replays scripted draws. When a sequence is exhausted it falls
// back to the fixed Val fields, so short scripts stay short.
type MockRand struct {
	IntSeq   []int
	FloatSeq []float64
	ValInt   int
	ValFloat float64

	intIdx   int
	floatIdx int
}

func (m *MockRand) Intn(n int) int {
	if m.intIdx < len(m.IntSeq) {
		v := m.IntSeq[m.intIdx]
		m.intIdx++
		return v
	}
	return m.ValInt
}

func (m *MockRand) Float64() float64 {
	if m.floatIdx < len(m.FloatSeq) {
		v := m.FloatSeq[m.floatIdx]
		m.floatIdx++
		return v
	}
	return m.ValFloat
}
