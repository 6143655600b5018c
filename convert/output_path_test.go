package convert

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"xlsxw/config"
	"xlsxw/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Workbook.FileNameTransliterate = transliterate
	cfg.Workbook.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func testDescription() *Description {
	return &Description{
		Properties: PropertiesDescription{Title: "Sales 2024", Author: "Jane Doe", Company: "ACME"},
		Sheets:     []SheetDescription{{Name: "Summary"}, {}},
	}
}

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		noDirs        bool
		transliterate bool
		template      string
		src           string
		want          string
	}{
		{"no dirs", true, false, "", "reports/q1/sales.yaml", filepath.Join("/output", "sales.xlsx")},
		{"with dirs", false, false, "", "reports/q1/sales.yaml", filepath.Join("/output", "reports", "q1", "sales.xlsx")},
		{"transliterate", true, true, "", "Книга.yaml", filepath.Join("/output", "kniga.xlsx")},
		{"template", true, false, "{{ .Company }}/{{ .Title }}", "sales.yaml", filepath.Join("/output", "ACME", "Sales 2024.xlsx")},
		{"template with ext", true, false, "{{ .SourceFile }}.xlsx", "sales.yaml", filepath.Join("/output", "sales.xlsx")},
		{"template transliterate", true, true, "{{ .Author }}", "sales.yaml", filepath.Join("/output", "jane-doe.xlsx")},
		{"template with dirs", false, false, "{{ .Sheets | first }}", "a/b.yaml", filepath.Join("/output", "a", "Summary.xlsx")},
		{"broken template", true, false, "{{ .Missing", "sales.yaml", filepath.Join("/output", "sales.xlsx")},
		{"empty expansion", true, false, "{{ .Subject }}", "sales.yaml", filepath.Join("/output", "sales.xlsx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			if got := buildOutputPath(testDescription(), tt.src, "/output", env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"a/b", []string{"a", "b"}},
		{"b", []string{"b"}},
		{"a/b/c/", []string{"a", "b", "c"}},
		{"/abs/x", []string{"abs", "x"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := splitPath(filepath.FromSlash(tt.path)); !slices.Equal(got, tt.want) {
				t.Errorf("splitPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	now := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		template string
		want     string
	}{
		{"{{ .Context }}", string(config.OutputNameTemplateFieldName)},
		{"{{ .Title }} - {{ .Date }}", "Sales 2024 - 2024-05-02"},
		{`{{ join "," .Sheets }}`, "Summary,Sheet2"},
		{"{{ .SourceFile | upper }}", "SALES"},
		{"{{ .Author | replace \" \" \"_\" }}", "Jane_Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := expandTemplate(testDescription(), "dir/sales.yaml", config.OutputNameTemplateFieldName, tt.template, now)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}

	_, err := expandTemplate(testDescription(), "x.yaml", config.OutputNameTemplateFieldName, "{{ if }}", now)
	if err == nil || !strings.Contains(err.Error(), string(config.OutputNameTemplateFieldName)) {
		t.Errorf("parse error should name template field, got %v", err)
	}
}
