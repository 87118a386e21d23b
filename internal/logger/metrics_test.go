package logger

import (
	"sync"
	"testing"
	"time"
)

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("images.placeholders")
	m.IncrCounter("images.placeholders")
	m.AddCounter("images.placeholders", 3)

	counters := m.GetSnapshot()["counters"].(map[string]int64)
	if counters["images.placeholders"] != 5 {
		t.Errorf("Counter = %v, want 5", counters["images.placeholders"])
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("build.route_count", 6)
	m.SetGauge("build.route_count", 7)

	gauges := m.GetSnapshot()["gauges"].(map[string]float64)
	if gauges["build.route_count"] != 7 {
		t.Errorf("Gauge = %v, want 7", gauges["build.route_count"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("build.route", 200*time.Millisecond)
	m.RecordTiming("build.route", 100*time.Millisecond)
	m.RecordTiming("build.route", 150*time.Millisecond)

	timing := m.GetSnapshot()["timings"].(map[string]map[string]interface{})["build.route"]
	if timing["count"].(int) != 3 {
		t.Errorf("Timing count = %v, want 3", timing["count"])
	}
	if timing["min"].(string) != "100ms" {
		t.Errorf("Min timing = %v, want 100ms", timing["min"])
	}
	if timing["max"].(string) != "200ms" {
		t.Errorf("Max timing = %v, want 200ms", timing["max"])
	}
	if timing["average"].(string) != "150ms" {
		t.Errorf("Average timing = %v, want 150ms", timing["average"])
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")
	m.SetGauge("b", 1)
	m.RecordTiming("c", time.Second)

	m.Reset()

	snap := m.GetSnapshot()
	if len(snap["counters"].(map[string]int64)) != 0 ||
		len(snap["gauges"].(map[string]float64)) != 0 ||
		len(snap["timings"].(map[string]map[string]interface{})) != 0 {
		t.Errorf("Reset() left values: %v", snap)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrCounter("hits")
			m.RecordTiming("op", time.Millisecond)
		}()
	}
	wg.Wait()

	if got := m.GetSnapshot()["counters"].(map[string]int64)["hits"]; got != 50 {
		t.Errorf("hits = %d, want 50", got)
	}
}

func TestPackageLevelMetrics(t *testing.T) {
	ResetMetrics()
	defer ResetMetrics()

	IncrCounter("test")
	AddCounter("test", 2)
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	snap := GetMetricsSnapshot()
	if snap["counters"].(map[string]int64)["test"] != 3 {
		t.Errorf("counter = %v, want 3", snap["counters"])
	}
}
