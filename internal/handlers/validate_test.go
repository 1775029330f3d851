package handlers

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	if msg := validateName(""); msg == "" {
		t.Error("empty name must be rejected")
	}
	if msg := validateName("   "); msg == "" {
		t.Error("blank name must be rejected")
	}
	if msg := validateName("Dome Cameras"); msg != "" {
		t.Errorf("valid name rejected: %s", msg)
	}
	if msg := validateName(strings.Repeat("x", maxNameLen+1)); msg == "" {
		t.Error("oversized name must be rejected")
	}
}

func TestValidateDescription(t *testing.T) {
	if msg := validateDescription(""); msg != "" {
		t.Errorf("empty description is allowed: %s", msg)
	}
	if msg := validateDescription(strings.Repeat("x", maxDescriptionLen+1)); msg == "" {
		t.Error("oversized description must be rejected")
	}
}

func TestValidateKeywords(t *testing.T) {
	if msg := validateKeywords(nil); msg != "" {
		t.Errorf("nil keywords are allowed: %s", msg)
	}
	if msg := validateKeywords(make([]string, maxKeywords+1)); msg == "" {
		t.Error("too many keywords must be rejected")
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		cName   string
		email   string
		subject string
		body    string
		wantOK  bool
	}{
		{"valid", "Ana Pop", "ana@example.com", "Quote", "Need 4 cameras.", true},
		{"missing name", "", "ana@example.com", "Quote", "Hi", false},
		{"missing email", "Ana", "", "Quote", "Hi", false},
		{"bad email", "Ana", "not-an-email", "Quote", "Hi", false},
		{"missing body", "Ana", "ana@example.com", "Quote", "   ", false},
		{"long body", "Ana", "ana@example.com", "Quote", strings.Repeat("x", maxContactBodyLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateContact(tt.cName, tt.email, tt.subject, tt.body)
			if (msg == "") != tt.wantOK {
				t.Errorf("got %q, want ok=%v", msg, tt.wantOK)
			}
		})
	}
}
