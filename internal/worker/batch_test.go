package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/factguard/factguard/internal/model"
)

type fakeVerifier struct {
	failOn string
}

func (f *fakeVerifier) Verify(ctx context.Context, input string) (*model.VerificationReport, error) {
	if input == f.failOn {
		return nil, fmt.Errorf("verification failed for %q", input)
	}
	return &model.VerificationReport{Input: input, InputType: "text"}, nil
}

func TestBatchProcessor_ProcessInputs(t *testing.T) {
	processor := NewBatchProcessor(&fakeVerifier{}, 3)

	inputs := []string{
		"Gold prices increased to $3000 per ounce today",
		"The president signed the trade agreement yesterday",
	}
	results := processor.ProcessInputs(context.Background(), inputs)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if result.Error != nil {
			t.Errorf("Unexpected error for %q: %v", result.Input, result.Error)
		}
		if result.Report == nil {
			t.Errorf("Expected report for %q", result.Input)
		}
	}
}

func TestBatchProcessor_ProcessInputs_PartialFailure(t *testing.T) {
	processor := NewBatchProcessor(&fakeVerifier{failOn: "bad input"}, 2)

	results := processor.ProcessInputs(context.Background(), []string{"good input", "bad input"})

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, result := range results {
		if result.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_ProcessInputs_Empty(t *testing.T) {
	processor := NewBatchProcessor(&fakeVerifier{}, 2)

	results := processor.ProcessInputs(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	content := `# comment line
Gold prices increased to $3000 per ounce today

Gold prices increased to $3000 per ounce today
The president signed the trade agreement
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(inputs) != 2 {
		t.Errorf("Expected 2 deduplicated inputs, got %d: %v", len(inputs), inputs)
	}
}

func TestReadInputsFromFile_Missing(t *testing.T) {
	_, err := ReadInputsFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
