package mock

import (
	"context"
	"strings"

	"github.com/hatmanstack/docpipe/ai"
)

// classifierRules are checked in order; the first matching keyword wins.
var classifierRules = []struct {
	keyword string
	label   string
}{
	{"invoice", "invoice"},
	{"subject:", "email"},
	{"memo", "memo"},
	{"abstract", "scientific publication"},
	{"resume", "resume"},
	{"budget", "budget"},
	{"question", "questionnaire"},
	{"agenda", "presentation"},
	{"breaking", "news article"},
	{"dear", "letter"},
}

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyDocumentFunc is called by ClassifyDocument if set.
	// If nil, uses default keyword heuristics.
	ClassifyDocumentFunc func(ctx context.Context, text string) (ai.Classification, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockClassifier().
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// ClassifyDocument assigns a class using simple keyword heuristics.
// Default behavior: scans the text for a few telltale words, falling back
// to the "file folder" catch-all class.
func (m *MockClassifier) ClassifyDocument(ctx context.Context, text string) (ai.Classification, error) {
	m.callCount++

	if m.ClassifyDocumentFunc != nil {
		return m.ClassifyDocumentFunc(ctx, text)
	}

	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		if strings.Contains(lower, rule.keyword) {
			return ai.Classification{Label: rule.label, Confidence: 0.9}, nil
		}
	}
	return ai.Classification{Label: "file folder", Confidence: 0.3}, nil
}

// CallCount returns the number of times ClassifyDocument was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyDocumentFunc = nil
}
