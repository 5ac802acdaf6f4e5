package model

// GeneratorState represents where the generator form is in its flow
type GeneratorState string

const (
	// GeneratorIdle means there is no input text
	GeneratorIdle GeneratorState = "Idle"

	// GeneratorDrafting means text is present and the payload follows every edit
	GeneratorDrafting GeneratorState = "Drafting"

	// GeneratorPreviewing means a non-empty payload is being rendered
	GeneratorPreviewing GeneratorState = "Previewing"
)

// String returns the string representation of GeneratorState
func (gs GeneratorState) String() string {
	return string(gs)
}

// IsPreviewing returns true if a preview is requested
func (gs GeneratorState) IsPreviewing() bool {
	return gs == GeneratorPreviewing
}
