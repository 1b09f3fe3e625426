package core

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// RetryPolicy re-runs a failing operation a fixed number of times.
// The persistence bridge uses it around store commits.
type RetryPolicy struct {
	Count int
	Delay time.Duration
}

// Execute runs op until it succeeds or Count retries are exhausted,
// returning the last error.
func (p *RetryPolicy) Execute(op func() error, idFormat string, args ...interface{}) error {
	err := op()
	if err == nil {
		return nil
	}

	id := fmt.Sprintf(idFormat, args...)

	log.WithFields(log.Fields{"module": "retry_policy", "operationId": id, "error": err}).Infof("retry_policy: operation %s failed. begin retrying", id)

	for i := 0; i < p.Count; i++ {
		time.Sleep(p.Delay)
		err = op()
		if err == nil {
			return nil
		}
		log.WithFields(log.Fields{"module": "retry_policy", "operationId": id, "error": err, "retryAttempt": i + 1}).Infof("retry_policy: operation %s failed.", id)
	}
	return err
}

func NewRetryPolicy(count int, delay time.Duration) *RetryPolicy {
	if count < 0 {
		count = 0
	}
	return &RetryPolicy{count, delay}
}
