package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ContactSubmitted("house")
	m.ContactSubmitted("")
	m.ContactSubmitted("")
	m.SeedRun("seeded")
	m.ObserveRequest("GET", "/api/services", 200, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.contactsSubmitted.WithLabelValues("house")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.contactsSubmitted.WithLabelValues("unspecified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.seedRuns.WithLabelValues("seeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/services", "200")))
}

func TestContactServiceTypeLabelsAreBounded(t *testing.T) {
	m := New()

	for i := 0; i < 500; i++ {
		m.ContactSubmitted(fmt.Sprintf("junk-%d", i))
	}
	m.ContactSubmitted("foundation")
	m.ContactSubmitted("")

	n, err := testutil.GatherAndCount(m.Registry(), "stroydom_contact_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 500.0, testutil.ToFloat64(m.contactsSubmitted.WithLabelValues("other")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contactsSubmitted.WithLabelValues("foundation")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ContactSubmitted("house")
		m.SeedRun("skipped")
		m.ObserveRequest("GET", "/", 200, time.Second)
	})
}
