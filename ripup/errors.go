package ripup

import "errors"

// ErrMalformedPath is returned when a candidate chain passed to Commit is
// missing the region/port linkage a non-root hop must carry.
var ErrMalformedPath = errors.New("ripup: malformed candidate chain")
