package constant

const (
	DocumentTypeProposal = "Proposal"
	DocumentTypeConcept  = "Concept Note"

	SectionInternal = "P_Internal"
	SectionExternal = "P_External"
	SectionDelta    = "P_Delta"
)

// ValidSection reports whether s names an evaluation section.
func ValidSection(s string) bool {
	switch s {
	case SectionInternal, SectionExternal, SectionDelta:
		return true
	}
	return false
}
