package intent

import "github.com/factguard/factguard/internal/model"

// Evaluation is the combined outcome of classifying OCR text and
// reconstructing claims from it
type Evaluation struct {
	Intent model.ImageIntent
	Claims []string
}

// Evaluator classifies OCR text and, when the category is verifiable,
// reconstructs claim candidates from it
type Evaluator struct {
	classifier    *Classifier
	reconstructor *Reconstructor
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(lexicon model.Lexicon, cfg model.ExtractionConfig) *Evaluator {
	return &Evaluator{
		classifier:    NewClassifier(lexicon, cfg.MinImageLineLength),
		reconstructor: NewReconstructor(lexicon, cfg.MinImageLineLength, cfg.MinImageClaimLen),
	}
}

// Evaluate runs classification first and only reconstructs claims for
// verifiable categories. Opinion, advertisement, and unreadable text
// yield no claims.
func (e *Evaluator) Evaluate(ocrText string) Evaluation {
	result := Evaluation{Intent: e.classifier.Classify(ocrText)}
	if !result.Intent.Verifiable() {
		return result
	}
	result.Claims = e.reconstructor.Reconstruct(ocrText)
	return result
}
