package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NotNil(t, reg.Metrics)

	reg.Metrics.PagesSelected.WithLabelValues("classes").Add(3)
	reg.Metrics.TriplesEmitted.WithLabelValues("classes").Add(9)
	reg.Metrics.QuadsWritten.Add(9)

	assert.Equal(t, float64(3),
		testutil.ToFloat64(reg.Metrics.PagesSelected.WithLabelValues("classes")))
	assert.Equal(t, float64(9),
		testutil.ToFloat64(reg.Metrics.QuadsWritten))

	families, err := reg.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.Metrics.QuadsWritten.Add(5)
	assert.Equal(t, float64(0), testutil.ToFloat64(b.Metrics.QuadsWritten))
}
