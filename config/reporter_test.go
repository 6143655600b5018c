package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestReport(t *testing.T) *Report {
	t.Helper()
	conf := ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	return r
}

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("cannot open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Contents(t *testing.T) {
	r := newTestReport(t)

	src := filepath.Join(t.TempDir(), "book.yaml")
	if err := os.WriteFile(src, []byte("sheets: []"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("A"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("styles.txt", []byte("fonts (1)"))
	r.Store("source.yaml", src)
	r.Store("inputs", dir)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	files := readReport(t, r.Name())

	if files["styles.txt"] != "fonts (1)" {
		t.Errorf("styles.txt = %q", files["styles.txt"])
	}
	if files["source.yaml"] != "sheets: []" {
		t.Errorf("source.yaml = %q", files["source.yaml"])
	}
	if files["inputs/a.txt"] != "A" {
		t.Errorf("inputs/a.txt = %q", files["inputs/a.txt"])
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"styles.txt", "source.yaml", "inputs"} {
		if !strings.Contains(manifest, "\t"+name+"\t") {
			t.Errorf("MANIFEST does not list %s:\n%s", name, manifest)
		}
	}
}

func TestReport_StoreCopy(t *testing.T) {
	r := newTestReport(t)

	src := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(src, []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("config.yaml", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// copy keeps content at the time of a call
	if err := os.WriteFile(src, []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("config.yaml", src); err != nil {
		t.Fatalf("second StoreCopy() error = %v", err)
	}

	scratch := append([]string(nil), r.scratch...)
	if len(scratch) != 2 {
		t.Fatalf("expected 2 scratch directories, got %d", len(scratch))
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	files := readReport(t, r.Name())
	if files["config.yaml"] != "before" {
		t.Errorf("config.yaml = %q, want first copy", files["config.yaml"])
	}
	var versioned int
	for name, content := range files {
		if strings.HasPrefix(name, "config.yaml-") && content == "after" {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned copy, got %d", versioned)
	}

	for _, dir := range scratch {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			os.RemoveAll(dir)
			t.Errorf("scratch directory %s was not removed", dir)
		}
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("stored source must be left alone: %v", err)
	}
}

func TestReport_StoreDuplicatePanics(t *testing.T) {
	r := newTestReport(t)
	defer r.Close()

	r.Store("log", "a.log")
	r.Store("log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("log", "b.log")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report has no name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
