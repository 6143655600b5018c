//go:build !windows

package config

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := map[string]string{
		"report.xlsx":      "report.xlsx",
		"a/b:c":            "abc",
		"..hidden":         "hidden",
		"zero\x00byte":     "zerobyte",
		"/:":               "_bad_file_name_",
		"Квартал 1 (итог)": "Квартал 1 (итог)",
	}
	for in, want := range tests {
		if got := CleanFileName(in); got != want {
			t.Errorf("CleanFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
