package notification

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestEmailTaskOptions(t *testing.T) {
	var timeout time.Duration
	var retries int
	for _, opt := range emailTaskOpts {
		switch opt.Type() {
		case asynq.TimeoutOpt:
			timeout = opt.Value().(time.Duration)
		case asynq.MaxRetryOpt:
			retries = opt.Value().(int)
		}
	}
	assert.Equal(t, 10*time.Second, timeout)
	assert.Equal(t, 5, retries)
}
