package httpgate

import "errors"

// ErrStatusUnmapped indicates the status-code table has no entry for a
// report's overall status. The table must cover all three statuses.
var ErrStatusUnmapped = errors.New("httpgate: no status code mapped")
