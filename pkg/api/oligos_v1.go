// pkg/api/oligos_v1.go
package api

// OligoV1 is the stable JSON/JSONL/YAML schema for one designed oligo.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OligoV1 struct {
	Label    string `json:"label" yaml:"label"`
	Sequence string `json:"sequence" yaml:"sequence"`
	Length   int    `json:"length" yaml:"length"`
	Fragment string `json:"fragment" yaml:"fragment"`
	Invalid  bool   `json:"invalid" yaml:"invalid"`
}

// ParametersV1 echoes the settings a batch was designed with.
type ParametersV1 struct {
	Strategy      string  `json:"strategy" yaml:"strategy"`
	OligoLength   int     `json:"oligo_length" yaml:"oligo_length"`
	OverlapLength int     `json:"overlap_length" yaml:"overlap_length"`
	GapLength     int     `json:"gap_length,omitempty" yaml:"gap_length,omitempty"`
	Clean         bool    `json:"clean_oligos" yaml:"clean_oligos"`
	Optimize      bool    `json:"optimized_oligos" yaml:"optimized_oligos"`
	NaMM          float64 `json:"na_conc" yaml:"na_conc"`
	KMM           float64 `json:"k_conc" yaml:"k_conc"`
	OligoNM       float64 `json:"oligo_conc" yaml:"oligo_conc"`
}

// BatchV1 is the whole-run document for the json and yaml formats.
type BatchV1 struct {
	RunID        string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Oligos       []OligoV1    `json:"oligos" yaml:"oligos"`
	TotalCount   int          `json:"total_count" yaml:"total_count"`
	InvalidCount int          `json:"invalid_count" yaml:"invalid_count"`
	Parameters   ParametersV1 `json:"parameters" yaml:"parameters"`
}

// AnalysisV1 is one row of the analyze report. Acceptable is true when the
// sequence already meets every design window on its own.
type AnalysisV1 struct {
	Name              string  `json:"name" yaml:"name"`
	Length            int     `json:"length" yaml:"length"`
	GC                float64 `json:"gc" yaml:"gc"`
	Tm                float64 `json:"tm" yaml:"tm"`
	Hairpin           float64 `json:"hairpin_dg" yaml:"hairpin_dg"`
	Duplex            float64 `json:"duplex_dg" yaml:"duplex_dg"`
	Acceptable        bool    `json:"acceptable" yaml:"acceptable"`
	Sequence          string  `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	ReverseComplement string  `json:"reverse_complement,omitempty" yaml:"reverse_complement,omitempty"`
}

// PrimerPairV1 is one row of the primers report. Tm is the Wallace
// estimate; a *_fallback flag marks an end where no candidate met the
// windows.
type PrimerPairV1 struct {
	Name            string  `json:"name" yaml:"name"`
	Forward         string  `json:"forward_primer" yaml:"forward_primer"`
	Reverse         string  `json:"reverse_primer" yaml:"reverse_primer"`
	ForwardTm       float64 `json:"forward_tm" yaml:"forward_tm"`
	ReverseTm       float64 `json:"reverse_tm" yaml:"reverse_tm"`
	ForwardGC       float64 `json:"forward_gc" yaml:"forward_gc"`
	ReverseGC       float64 `json:"reverse_gc" yaml:"reverse_gc"`
	ForwardFallback bool    `json:"forward_fallback,omitempty" yaml:"forward_fallback,omitempty"`
	ReverseFallback bool    `json:"reverse_fallback,omitempty" yaml:"reverse_fallback,omitempty"`
}
