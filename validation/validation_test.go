package validation

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/restsdk/errors"
)

type proxySettings struct {
	Port int `json:"port" validate:"omitempty,min=1,max=65535"`
}

type sample struct {
	Endpoint string        `json:"endpoint" validate:"required,url"`
	Timeout  time.Duration `json:"timeout" validate:"gte=0"`
	Proxy    proxySettings `json:"proxy"`
	MaxConns int           `validate:"gte=0"`
}

func TestValidate_Valid(t *testing.T) {
	s := sample{Endpoint: "https://api.example.com/v1/", Timeout: time.Second}
	if err := Validate(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        sample
		wantField string
		wantMsg   string
	}{
		{"missing endpoint", sample{}, "endpoint", "is required"},
		{"bad endpoint", sample{Endpoint: "not a url"}, "endpoint", "must be a valid URL"},
		{"negative timeout", sample{Endpoint: "https://x.test/", Timeout: -time.Second}, "timeout", "must be at least 0"},
		{"port out of range", sample{Endpoint: "https://x.test/", Proxy: proxySettings{Port: 70000}}, "proxy.port", "must be at most 65535"},
		{"snake case fallback", sample{Endpoint: "https://x.test/", MaxConns: -1}, "max_conns", "must be at least 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			ce, _ := errors.AsCallError(err)
			fields, ok := ce.Details["fields"].([]FieldError)
			if !ok || len(fields) != 1 {
				t.Fatalf("expected one field error, got %v", ce.Details["fields"])
			}
			if fields[0].Field != tc.wantField || fields[0].Message != tc.wantMsg {
				t.Errorf("expected %s %q, got %s %q", tc.wantField, tc.wantMsg, fields[0].Field, fields[0].Message)
			}
		})
	}
}

func TestValidator_Collects(t *testing.T) {
	v := New()
	v.Required("host", " ").
		Range("port", 0, 1, 65535).
		Custom(false, "cert_file", "must be set together with key_file")

	if !v.HasErrors() || len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %v", v.Errors())
	}
	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"host: is required", "port: must be between 1 and 65535", "cert_file"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestValidator_NoErrors(t *testing.T) {
	if err := New().Required("host", "h").Range("port", 443, 1, 65535).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_Merge(t *testing.T) {
	v := New()
	v.Merge("settings", Validate(sample{}))
	v.Merge("tls", stderrors.New("bad ca"))
	v.Merge("nothing", nil)

	got := v.Errors()
	if len(got) != 2 {
		t.Fatalf("expected 2 errors, got %v", got)
	}
	if got[0].Field != "endpoint" || got[1].Field != "tls" {
		t.Errorf("unexpected fields %v", got)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("MaxConns"); got != "max_conns" {
		t.Errorf("expected max_conns, got %s", got)
	}
}
