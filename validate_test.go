package markup

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlHeavyInput(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputAcceptsMarkup(t *testing.T) {
	src := []byte("# Title\n\tTabs, *emphasis* and ```if x```\r\n")
	if err := ValidateInput(src); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestRenderSkipsValidationWhenDisabled(t *testing.T) {
	var out bytes.Buffer
	_, err := Render(RenderRequest{
		Reader: bytes.NewReader([]byte{'a', 0xff}),
		Writer: &out,
	})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	out.Reset()
	_, err = Render(RenderRequest{
		Reader:  bytes.NewReader([]byte{'a', 0xff}),
		Writer:  &out,
		Options: []RenderOption{WithValidation(false)},
	})
	if err != nil {
		t.Fatalf("expected no error with validation disabled, got %v", err)
	}
	if out.String() != "a\xff" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
