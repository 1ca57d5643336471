package domain

import "errors"

// ErrInvalidDateRange marks an unparsable from/to parameter. Callers should
// treat it as a client error and not retry.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrRepository marks an underlying storage failure. Services wrap it with
// the metric name and scope; retry policy, if any, belongs to the storage
// layer, not the aggregation core.
var ErrRepository = errors.New("repository failure")
