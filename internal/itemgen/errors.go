package itemgen

import "errors"

// ErrGenerationFailed wraps any failure to produce a valid item: the
// generation service erroring, unparsable output, or a payload that
// fails validation. The caller may retry; the generator never
// substitutes a different item type than requested.
var ErrGenerationFailed = errors.New("item generation failed")
