package game

import (
	"testing"
	"time"
)

func TestResultsBoardFinishersSorted(t *testing.T) {
	rb := NewResultsBoard()
	rb.SetFinishers([]Finisher{
		{Name: "222", Time: 9 * time.Second},
		{Name: "456", Time: 7 * time.Second},
		{Name: "333", Time: 12 * time.Second},
	})

	got := rb.Finishers()
	want := []string{"456", "222", "333"}
	if len(got) != len(want) {
		t.Fatalf("len(Finishers()) = %d, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Finishers()[%d] = %s, want %s", i, got[i].Name, name)
		}
	}

	got[0].Name = "changed"
	if rb.Finishers()[0].Name != "456" {
		t.Error("Finishers() should return a copy")
	}
}

func TestResultsBoardTracing(t *testing.T) {
	rb := NewResultsBoard()
	if _, ok := rb.LastTracing(); ok {
		t.Fatal("LastTracing() ok on empty board")
	}

	rb.RecordTracing(TracingResult{Game: StateDalgona, Shape: "star", Progress: 0.4, Cracks: 30})
	rb.RecordTracing(TracingResult{Game: StateBoundary, Shape: "triangle", Success: true, Progress: 1})

	r, ok := rb.LastTracing()
	if !ok || r.Game != StateBoundary || !r.Success {
		t.Errorf("LastTracing() = %+v, %v; want the boundary success", r, ok)
	}

	rb.Clear()
	if _, ok := rb.LastTracing(); ok || len(rb.Finishers()) != 0 {
		t.Error("Clear() left results behind")
	}
}
