package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpstream(t *testing.T) {
	counter := UpstreamRequestsTotal.WithLabelValues("metricsTestOp", OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	ObserveUpstream("metricsTestOp", OutcomeSuccess, time.Now().Add(-10*time.Millisecond))
	ObserveUpstream("metricsTestOp", OutcomeSuccess, time.Now())

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(UpstreamRequestDuration), 1)
}
