package debug

import (
	"bytes"
	"testing"
)

func TestTreeWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(tw *TreeWriter)
		want  string
	}{
		{
			name:  "line",
			write: func(tw *TreeWriter) { tw.Line(0, "fonts") },
			want:  "fonts\n",
		},
		{
			name:  "indented formatted line",
			write: func(tw *TreeWriter) { tw.Line(2, "[%d] %s", 1, "Calibri") },
			want:  "    [1] Calibri\n",
		},
		{
			name:  "section",
			write: func(tw *TreeWriter) { tw.Section(1, "fills", 2) },
			want:  "  fills (2):\n",
		},
		{
			name:  "empty text block",
			write: func(tw *TreeWriter) { tw.TextBlock(0, "code", "") },
			want:  "code: \n",
		},
		{
			name:  "text block keeps control characters visible",
			write: func(tw *TreeWriter) { tw.TextBlock(1, "[164]", "0.00\t\"x\"\n") },
			want:  "  [164]: \"0.00\\t\\\"x\\\"\\n\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tt.write(tw)
			if got := tw.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterWriteTo(t *testing.T) {
	tw := NewTreeWriter()
	tw.Section(0, "borders", 1)
	tw.Line(1, "[0] empty")

	var buf bytes.Buffer
	n, err := tw.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if want := "borders (1):\n  [0] empty\n"; buf.String() != want || n != int64(len(want)) {
		t.Errorf("WriteTo() = %d %q", n, buf.String())
	}
}
