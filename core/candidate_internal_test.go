package core

import "testing"

// White-box test: bumpRipCount is unexported, so this file lives in
// package core itself to reach that private state directly.
func TestCandidate_StaleOncePortRipCounterAdvances(t *testing.T) {
	h := NewHypergraph()
	a, _ := h.AddRegion("A")
	r, _ := h.AddRegion("R")
	b, _ := h.AddRegion("B")
	p1, _ := h.AddPort("p1", a, r)
	p2, _ := h.AddPort("p2", r, b)

	conn := &Connection{ConnectionID: "c1"}
	asg, err := NewAssignment(r, p1, p2, conn)
	if err != nil {
		t.Fatalf("NewAssignment: %v", err)
	}

	c := &Candidate{RipSet: []*Assignment{asg}}
	c.RecordRipSnapshot()
	if c.Stale() {
		t.Fatalf("candidate must not be stale before any rip")
	}

	p1.bumpRipCount()
	if !c.Stale() {
		t.Fatalf("candidate must be stale once a rip-set port's rip counter advances")
	}
}

func TestCandidate_PathFromRoot(t *testing.T) {
	root := &Candidate{}
	mid := &Candidate{Parent: root}
	leaf := &Candidate{Parent: mid}

	path := leaf.PathFromRoot()
	if len(path) != 3 || path[0] != root || path[1] != mid || path[2] != leaf {
		t.Fatalf("PathFromRoot returned unexpected order: %+v", path)
	}
}
