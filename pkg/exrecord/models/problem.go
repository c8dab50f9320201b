package models

// ValidationProblem is a recoverable data problem found during a conversion.
type ValidationProblem struct {
	// Message is a self-contained description of the problem.
	Message string `json:"message"`
	// Worksheet is the worksheet the problem was found in, if known.
	Worksheet string `json:"worksheet,omitempty"`
	// Cell is the cell address in letter+row notation, if known.
	Cell string `json:"cell,omitempty"`
}

func (p ValidationProblem) String() string {
	return p.Message
}
