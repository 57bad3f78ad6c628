package telemetry

import "testing"

type fakeCounter struct {
	calls []string
}

func (f *fakeCounter) Add(name string, value float64, tags map[string]string) {
	f.calls = append(f.calls, name)
}

func TestEmitNoopWhenDisabled(t *testing.T) {
	Disable()
	Emit("anything", 1, nil) // must not panic
}

func TestEmitReachesEnabledSink(t *testing.T) {
	f := &fakeCounter{}
	Enable(f)
	defer Disable()

	Emit("strmetrics_similarity_calls_total", 1, map[string]string{"algorithm": "levenshtein"})
	if len(f.calls) != 1 || f.calls[0] != "strmetrics_similarity_calls_total" {
		t.Errorf("calls = %v, want one call to strmetrics_similarity_calls_total", f.calls)
	}
}

func TestLengthBucketBoundaries(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "empty"},
		{10, "tiny"},
		{11, "short"},
		{200, "medium"},
		{1000, "long"},
		{1001, "very_long"},
	}
	for _, tt := range tests {
		if got := LengthBucket(tt.n); got != tt.want {
			t.Errorf("LengthBucket(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
