package reconciler

import "time"

const (
	defaultWorkerCount = 8
	defaultRetries     = 2
	defaultRetryDelay  = 2 * time.Second
	maxRetryDelay      = 30 * time.Second

	outputDirName = "out"
)

const (
	outcomeBatcherCapacity      = 500
	outcomeBatcherFlushInterval = 5 * time.Second
	outcomeBatcherRPS           = 10
)
