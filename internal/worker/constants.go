package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerQueueFull   = "Worker queue full, job dropped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Pool defaults used when the config leaves them unset
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
