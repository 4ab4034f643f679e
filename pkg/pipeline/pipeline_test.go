package pipeline

import (
	"testing"

	"github.com/matzehuels/includecycle/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"dot", true},
		{"TEXT", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateExportFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"json", false},
		{"text", true},
		{"png", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateExportFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateExportFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Root: "src"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Jobs != DefaultJobs {
		t.Errorf("Jobs = %d, want %d", opts.Jobs, DefaultJobs)
	}
	if opts.Format != FormatText {
		t.Errorf("Format = %q, want %q", opts.Format, FormatText)
	}
}

func TestValidateAndSetDefaults_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty root", Options{}, errors.ErrCodeInvalidRoot},
		{"too many jobs", Options{Root: "src", Jobs: MaxJobs + 1}, errors.ErrCodeInvalidConfig},
		{"bad format", Options{Root: "src", Format: "yaml"}, errors.ErrCodeInvalidFormat},
		{"bad extension", Options{Root: "src", Extensions: []string{"ipp"}}, errors.ErrCodeInvalidConfig},
		{"bad ignore dir", Options{Root: "src", IgnoreDirs: []string{"a/b"}}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
