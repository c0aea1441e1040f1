package game

import "testing"

func TestStatistics(t *testing.T) {
	data := []float64{4, 1, 3, 2}
	if Mean(data) != 2.5 || Median(data) != 2.5 {
		t.Fatalf("unexpected mean %v or median %v", Mean(data), Median(data))
	}
	if data[0] != 4 {
		t.Fatalf("Median should not reorder its input")
	}
	if Median([]float64{5, 1, 3}) != 3 {
		t.Fatalf("expected median 3 for an odd amount of values")
	}
	if Sum(data) != 10 {
		t.Fatalf("unexpected sum %v", Sum(data))
	}
	if Mean(nil) != 0 || Median(nil) != 0 {
		t.Fatalf("empty data should yield zero")
	}
	if n := Outliers([]float64{1, 2, 2, 3, 2, 1, 3, 50}); n != 1 {
		t.Fatalf("expected a single outlier, got %d", n)
	}
}
