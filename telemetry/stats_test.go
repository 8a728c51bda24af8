package telemetry

import (
	"math"
	"testing"
)

func TestComputeEnergyStats(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mean, std, p10, p50, p90 := ComputeEnergyStats(values)

	if math.Abs(mean-55) > 1e-9 {
		t.Errorf("mean = %v, want 55", mean)
	}
	if std <= 0 {
		t.Errorf("std = %v, want > 0", std)
	}
	if math.Abs(p10-10) > 1e-9 {
		t.Errorf("p10 = %v, want 10", p10)
	}
	if math.Abs(p50-50) > 1e-9 {
		t.Errorf("p50 = %v, want 50", p50)
	}
	if math.Abs(p90-90) > 1e-9 {
		t.Errorf("p90 = %v, want 90", p90)
	}
}

func TestComputeEnergyStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeEnergyStats(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should produce all-zero stats")
	}
}

func TestComputeEnergyStatsSingleValue(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeEnergyStats([]float64{42})
	if mean != 42 || p10 != 42 || p50 != 42 || p90 != 42 {
		t.Errorf("single value stats = %v/%v/%v/%v, want all 42", mean, p10, p50, p90)
	}
	if std != 0 {
		t.Errorf("std = %v, want 0 for a single value", std)
	}
}

func TestComputeEnergyStatsUnsortedInput(t *testing.T) {
	a, _, _, _, _ := ComputeEnergyStats([]float64{3, 1, 2})
	b, _, _, _, _ := ComputeEnergyStats([]float64{1, 2, 3})
	if a != b {
		t.Error("stats must not depend on input order")
	}
}
