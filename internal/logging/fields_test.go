package logging

import (
	"errors"
	"testing"
)

func TestProcessAttrs(t *testing.T) {
	attrs := processAttrs("umpire-auditor", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "umpire-auditor" {
		t.Fatalf("unexpected service attr %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("unexpected version attr %+v", attrs[1])
	}
	if got := processAttrs("", ""); len(got) != 0 {
		t.Fatalf("expected no attrs for empty process info, got %+v", got)
	}
}

func TestErrAttr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != FieldError || attr.Value.Any().(error).Error() != "boom" {
		t.Fatalf("unexpected error attr %+v", attr)
	}
	if Err(nil).Key != "" {
		t.Fatalf("expected empty attr for nil error")
	}
}
