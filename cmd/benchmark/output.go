package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/nathanfaucett/persistent-list/internal/bench"
	"github.com/nathanfaucett/persistent-list/internal/config"
)

func writeResults(w io.Writer, format string, results []bench.Result) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case config.OutputYAML:
		b, err := yaml.Marshal(results)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = w.Write(b)
		return err

	case config.OutputTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "SCENARIO\tSIZE\tSAMPLES\tROUNDS\tMEAN(ns)\tSTDDEV(ns)\tMIN(ns)\tMAX(ns)\t")
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.0f\t%.0f\t%.0f\t%.0f\t\n",
				r.Scenario, r.Size, r.Samples, r.Rounds, r.MeanNs, r.StdDevNs, r.MinNs, r.MaxNs)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
