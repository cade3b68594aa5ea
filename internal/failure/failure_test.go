package failure

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := New(FileNotFound, "PDF file not found at: /tmp/missing.pdf")

	want := "File not found: PDF file not found at: /tmp/missing.pdf"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(FileNotFound, "PDF file not found at: %s", "/tmp/missing.pdf")

	if !strings.Contains(err.Message, "/tmp/missing.pdf") {
		t.Errorf("message should contain the rejected path, got %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("xref table corrupt")
	err := Wrap(cause)

	if err.Category != ExtractionFailure {
		t.Errorf("expected category %q, got %q", ExtractionFailure, err.Category)
	}
	if err.Message != "xref table corrupt" {
		t.Errorf("expected cause text as message, got %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = New(MissingArgument, "usage: tablex <pdf_path>")

	var fErr *Error
	if !errors.As(err, &fErr) {
		t.Fatal("errors.As should recover *Error")
	}
	if fErr.Category != MissingArgument {
		t.Errorf("expected category %q, got %q", MissingArgument, fErr.Category)
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	err := New(FileNotFound, "PDF file not found at: /tmp/missing.pdf")

	if emitErr := Emit(&buf, err); emitErr != nil {
		t.Fatalf("Emit failed: %v", emitErr)
	}

	line := buf.String()
	if strings.Count(line, "\n") != 1 || !strings.HasSuffix(line, "\n") {
		t.Errorf("payload should be exactly one line, got %q", line)
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal([]byte(line), &payload); jsonErr != nil {
		t.Fatalf("payload is not valid JSON: %v", jsonErr)
	}
	if payload.Error != "File not found" {
		t.Errorf("expected category %q, got %q", "File not found", payload.Error)
	}
	if payload.Message != "PDF file not found at: /tmp/missing.pdf" {
		t.Errorf("unexpected message: %q", payload.Message)
	}
}

func TestPayload_WireShape(t *testing.T) {
	// The calling pipeline parses this object directly; the two-field
	// shape and key names are load-bearing.
	data, err := json.Marshal(Payload{Error: "File not found", Message: "gone"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"error":"File not found","message":"gone"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, string(data))
	}
}
