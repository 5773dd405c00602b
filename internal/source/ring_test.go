package source

import (
	"strconv"
	"testing"
)

func TestRingOverwritesOldest(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.Push(Record{ID: strconv.Itoa(i)})
	}
	recs, total, dropped := r.Snapshot()
	if len(recs) != 3 {
		t.Fatalf("size: %d", len(recs))
	}
	if recs[0].ID != "2" || recs[2].ID != "4" {
		t.Fatalf("arrival order after wrap: %v %v %v", recs[0].ID, recs[1].ID, recs[2].ID)
	}
	if total != 5 || dropped != 2 {
		t.Fatalf("counters: total=%d dropped=%d", total, dropped)
	}
}

func TestRingBelowCapacity(t *testing.T) {
	r := NewRing(10)
	r.Push(Record{ID: "a"})
	r.Push(Record{ID: "b"})
	recs, total, dropped := r.Snapshot()
	if len(recs) != 2 || recs[0].ID != "a" || recs[1].ID != "b" {
		t.Fatalf("records: %v", recs)
	}
	if total != 2 || dropped != 0 {
		t.Fatalf("counters: total=%d dropped=%d", total, dropped)
	}
}

func TestRingNonPositiveCapacity(t *testing.T) {
	r := NewRing(0)
	if r.Cap() != 1 {
		t.Fatalf("cap: %d", r.Cap())
	}
	r.Push(Record{ID: "a"})
	r.Push(Record{ID: "b"})
	recs, _, _ := r.Snapshot()
	if len(recs) != 1 || recs[0].ID != "b" {
		t.Fatalf("records: %v", recs)
	}
}

func TestRingSnapshotIsACopy(t *testing.T) {
	r := NewRing(2)
	r.Push(Record{ID: "a"})
	recs, _, _ := r.Snapshot()
	recs[0].ID = "mutated"
	again, _, _ := r.Snapshot()
	if again[0].ID != "a" {
		t.Fatalf("snapshot must not alias the buffer")
	}
}
