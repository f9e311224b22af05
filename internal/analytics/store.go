package analytics

import "context"

// Sink receives usage events emitted by the evaluation pipeline. Failures
// must not abort the pipeline; callers log and continue.
type Sink interface {
	LogUsage(ctx context.Context, userEmail string, processed int) error
}

type store interface {
	Insert(ctx context.Context, log UsageLog) error
	List(ctx context.Context) ([]UsageLog, error)
}
