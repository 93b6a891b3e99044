package ai

// DocumentClasses defines the valid labels for document classification.
// The list follows the RVL-CDIP taxonomy of business document types.
var DocumentClasses = []string{
	"advertisement",
	"budget",
	"email",
	"file folder",
	"form",
	"handwritten",
	"invoice",
	"letter",
	"memo",
	"news article",
	"presentation",
	"questionnaire",
	"resume",
	"scientific publication",
	"scientific report",
	"specification",
}

// IsValidDocumentClass reports whether label is one of the predefined
// document classes.
func IsValidDocumentClass(label string) bool {
	for _, c := range DocumentClasses {
		if c == label {
			return true
		}
	}
	return false
}
