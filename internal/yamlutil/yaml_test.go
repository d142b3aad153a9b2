package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

type siteConfig struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
	Strict  bool   `yaml:"strict"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        []byte
		dest        any
		wantErr     error
		wantErrText string
		want        siteConfig
	}{
		{
			name: "valid YAML",
			data: []byte("dir: docs/lecture\nworkers: 4\nstrict: true"),
			dest: &siteConfig{},
			want: siteConfig{Dir: "docs/lecture", Workers: 4, Strict: true},
		},
		{
			name: "unknown keys are ignored",
			data: []byte("dir: notes\nextra: 1"),
			dest: &siteConfig{},
			want: siteConfig{Dir: "notes"},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &siteConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("dir: notes"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:        "invalid syntax is prefixed",
			data:        []byte("dir: [unclosed"),
			dest:        &siteConfig{},
			wantErrText: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.wantErrText != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrText) {
					t.Errorf("Unmarshal() error = %v, want containing %q", err, tt.wantErrText)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}

			got := *tt.dest.(*siteConfig)
			if got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var cfg siteConfig
	err := yamlutil.UnmarshalStrict([]byte("dir: notes\ntypo: true"), &cfg)
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error should be prefixed, got %q", err.Error())
	}
}

func TestUnmarshalStrict_AcceptsKnownFields(t *testing.T) {
	t.Parallel()

	var cfg siteConfig
	if err := yamlutil.UnmarshalStrict([]byte("dir: notes\nworkers: 2"), &cfg); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if cfg.Dir != "notes" || cfg.Workers != 2 {
		t.Errorf("UnmarshalStrict() = %+v", cfg)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(siteConfig{Dir: "docs", Workers: 3})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	for _, want := range []string{"dir: docs", "workers: 3", "strict: false"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}
}

func TestInputSizeLimit(t *testing.T) {
	// Not parallel: mutates package-level MaxInputSize.
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = orig }()

	var cfg siteConfig
	err := yamlutil.Unmarshal([]byte("dir: a-directory-name-that-is-too-long"), &cfg)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}
