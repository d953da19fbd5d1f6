package repository

import "errors"

// ErrStoreUnavailable marks failures reaching or querying the reading
// archive or the segment catalog. It is retryable infrastructure failure;
// retrying is the caller's decision, repositories never retry.
var ErrStoreUnavailable = errors.New("store unavailable")
