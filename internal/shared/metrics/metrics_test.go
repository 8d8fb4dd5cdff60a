package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("thumb", ResultHit))
	RecordRequest("thumb", ResultHit)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("thumb", ResultHit)))

	contention := testutil.ToFloat64(LockContentionTotal.WithLabelValues("thumb"))
	RecordLockContention("thumb")
	assert.Equal(t, contention+1, testutil.ToFloat64(LockContentionTotal.WithLabelValues("thumb")))

	flushed := testutil.ToFloat64(FlushedTotal)
	RecordFlushed(3)
	assert.Equal(t, flushed+3, testutil.ToFloat64(FlushedTotal))

	RecordGeneration("thumb", "ok", 0.2)
	assert.Equal(t, 1, testutil.CollectAndCount(GenerationDuration))
}
