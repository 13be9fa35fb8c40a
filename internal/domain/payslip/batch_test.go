package payslip

import (
	"context"
	"errors"
	"testing"
)

type stubRenderer struct {
	failOn map[string]bool
	calls  int
}

func (s *stubRenderer) Render(_ context.Context, slip Payslip) (string, error) {
	s.calls++
	if s.failOn[slip.Employee.FullName] {
		return "", errors.New("layout exploded")
	}
	return "data:application/pdf;base64,AAAA", nil
}

func TestGenerateAllIsolatesFailures(t *testing.T) {
	renderer := &stubRenderer{failOn: map[string]bool{"Bob": true}}
	gen := NewGenerator(testEmployer, renderer)

	inputs := []EmployeeInput{
		{FullName: "Alice", Month: "Jan", GrossSalary: "100"},
		{FullName: "Bob", Month: "Jan", GrossSalary: "100"},
		{FullName: "Carol", Month: "Jan", GrossSalary: "100"},
	}

	records := gen.GenerateAll(context.Background(), inputs)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if renderer.calls != 3 {
		t.Fatalf("expected every record attempted, got %d render calls", renderer.calls)
	}
	if records[0].Status != RecordStatusSucceeded || records[2].Status != RecordStatusSucceeded {
		t.Fatalf("expected records 1 and 3 to succeed, got %s / %s", records[0].Status, records[2].Status)
	}
	if records[1].Status != RecordStatusFailed {
		t.Fatalf("expected record 2 to fail, got %s", records[1].Status)
	}
	if records[1].Err != "layout exploded" {
		t.Fatalf("expected failure message to carry through, got %q", records[1].Err)
	}
	if records[1].Document != "" {
		t.Fatalf("failed record should not carry a document")
	}
}

func TestGenerateOneCalculationFailure(t *testing.T) {
	gen := NewGenerator(testEmployer, &stubRenderer{})

	rec := gen.GenerateOne(context.Background(), EmployeeInput{Month: "Jan"})
	if rec.Status != RecordStatusFailed {
		t.Fatalf("expected failed record, got %s", rec.Status)
	}
	if rec.Err == "" {
		t.Fatal("expected a failure message")
	}
}

func TestGenerateOneFreshAttemptPerCall(t *testing.T) {
	gen := NewGenerator(testEmployer, &stubRenderer{})
	input := EmployeeInput{FullName: "Alice", Month: "Jan"}

	first := gen.GenerateOne(context.Background(), input)
	second := gen.GenerateOne(context.Background(), input)
	if first.ID == second.ID {
		t.Fatal("expected each attempt to be a distinct record")
	}
	if second.Status != RecordStatusSucceeded {
		t.Fatalf("expected fresh attempt to succeed, got %s", second.Status)
	}
}

type panicRenderer struct{}

func (panicRenderer) Render(context.Context, Payslip) (string, error) {
	panic("boom")
}

func TestGenerateOneRecoversPanic(t *testing.T) {
	gen := NewGenerator(testEmployer, panicRenderer{})

	rec := gen.GenerateOne(context.Background(), EmployeeInput{FullName: "Alice"})
	if rec.Status != RecordStatusFailed {
		t.Fatalf("expected failed record after panic, got %s", rec.Status)
	}
	if rec.Err == "" {
		t.Fatal("expected panic message on record")
	}
}
