package expect

import (
	"github.com/nisha-kaushik/nunit/pkg/throw"
)

// Classifier maps an arbitrary thrown exception to the terminal state the
// framework recognizes for it. Decouples the verifier from the exception
// hierarchy of any particular host environment.
type Classifier interface {
	// Classify returns the framework classification for the exception,
	// throw.StateNone when it carries no special classification.
	Classify(ex *throw.Exception) throw.ResultState
}

// StateClassifier is the default Classifier: it reads the classification
// the exception itself carries.
type StateClassifier struct{}

// NewStateClassifier creates the default classifier.
func NewStateClassifier() *StateClassifier {
	return &StateClassifier{}
}

// Classify returns the exception's own result state.
func (*StateClassifier) Classify(ex *throw.Exception) throw.ResultState {
	if ex == nil {
		return throw.StateNone
	}

	return ex.State()
}

// Verify interface compliance.
var _ Classifier = (*StateClassifier)(nil)
