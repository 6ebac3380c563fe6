package core

// SolvedRoute is the committed result of routing one Connection: the
// ordered path of candidates from start to end, and whether ripping prior
// assignments was required to discover it.
type SolvedRoute struct {
	Connection  *Connection
	Path        []*Candidate
	RequiredRip bool
}
