package benchmark

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nathanfaucett/persistent-list/internal/bench"
	"github.com/nathanfaucett/persistent-list/internal/config"
)

func TestWriteResults(t *testing.T) {
	results := []bench.Result{
		{
			Scenario: "push/persistent",
			Op:       bench.OpPush,
			Kind:     bench.KindPersistent,
			Size:     1024,
			Samples:  10,
			Rounds:   100,
			MeanNs:   1500,
			StdDevNs: 12.5,
			MinNs:    1480,
			MaxNs:    1530,
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, config.OutputTable, results))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, []string{"SCENARIO", "SIZE", "SAMPLES", "ROUNDS", "MEAN(ns)", "STDDEV(ns)", "MIN(ns)", "MAX(ns)"}, strings.Fields(lines[0]))
		require.Equal(t, []string{"push/persistent", "1024", "10", "100", "1500", "12", "1480", "1530"}, strings.Fields(lines[1]))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, config.OutputJSON, results))
		require.JSONEq(t, `[{"scenario":"push/persistent","op":"push","kind":"persistent","size":1024,"samples":10,"rounds":100,"mean_ns":1500,"stddev_ns":12.5,"min_ns":1480,"max_ns":1530}]`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResults(&buf, config.OutputYAML, results))
		require.YAMLEq(t, `
- scenario: push/persistent
  op: push
  kind: persistent
  size: 1024
  samples: 10
  rounds: 100
  mean_ns: 1500
  stddev_ns: 12.5
  min_ns: 1480
  max_ns: 1530
`, buf.String())
	})

	t.Run("unknown", func(t *testing.T) {
		require.Error(t, writeResults(&bytes.Buffer{}, "csv", results))
	})
}
