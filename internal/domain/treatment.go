package domain

// TreatmentRequest is everything a caller supplies for one treatment.
type TreatmentRequest struct {
	// RawSVG must contain a recognizable <svg ...> opening tag.
	RawSVG string
	// Identifier is used verbatim when non-empty; no escaping is performed.
	Identifier string

	IncludeContainer bool
	ReplaceColors    bool

	// Optimization overrides the process-wide preset for this call only.
	Optimization *OptimizationConfig
}

// TreatmentResult is the output of one treatment.
type TreatmentResult struct {
	// Output is the symbol fragment, or the fragment inside a container tag.
	Output string
	// Identifier is the id written into the symbol tag.
	Identifier string
	// Generated is true when Identifier came from the token source.
	Generated bool
}
