package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		VersionID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	if err := cv.Validate(P{VersionID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                      // empty
		strings.Repeat("A", 32), // uppercase
		"deadbeef",              // too short
		strings.Repeat("g", 32), // non-hex char
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
	} {
		err := cv.Validate(P{VersionID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "VersionID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestHex24Validation(t *testing.T) {
	type P struct {
		FileID string `validate:"hex24"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{FileID: strings.Repeat("c", 24)}); err != nil {
		t.Fatalf("expected valid hex24, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("C", 24), // uppercase
		strings.Repeat("c", 23),
		strings.Repeat("c", 25),
		strings.Repeat("z", 24), // non-hex char
	} {
		err := cv.Validate(P{FileID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "FileID", "24-char lowercase hex") {
			t.Fatalf("expected hex24 message for %q, got: %+v", s, fe)
		}
	}
}

func TestRequiredAndMaxMapping(t *testing.T) {
	type P struct {
		Code string `validate:"required,max=64"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Code: ""})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Code", "is required") {
		t.Fatalf("missing 'is required' for Code: %+v", fe)
	}

	err = cv.Validate(P{Code: strings.Repeat("x", 65)})
	if err == nil {
		t.Fatalf("expected max violation")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Code", "at most 64 characters") {
		t.Fatalf("missing max message for Code: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
