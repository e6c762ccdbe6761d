// internal/writers/yaml.go
package writers

import (
	"io"

	"gopkg.in/yaml.v3"

	"oligotile/pkg/api"
)

func init() {
	RegisterBatch("yaml", func(w io.Writer, b api.BatchV1, _ Options) error { return encodeYAML(w, b) })
	RegisterAnalysis("yaml", func(w io.Writer, rows []api.AnalysisV1, _ Options) error { return encodeYAML(w, rows) })
	RegisterPrimers("yaml", func(w io.Writer, rows []api.PrimerPairV1, _ Options) error { return encodeYAML(w, rows) })
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
