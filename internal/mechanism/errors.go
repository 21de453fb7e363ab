package mechanism

import "errors"

// ErrInvalidDomain indicates a domain that cannot be sampled or evaluated.
var ErrInvalidDomain = errors.New("mechanism: invalid domain")
