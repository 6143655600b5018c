// Package inspect implements command which looks inside produced workbooks.
package inspect

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"xlsxw/archive"
	"xlsxw/state"
)

// Run lists parts of the workbook or, when part name is given, prints its
// content.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no workbook has been specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many parts", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	part := cmd.Args().Get(1)
	if len(part) == 0 {
		log.Debug("Listing workbook", zap.String("file", src))
		return List(out, src)
	}
	log.Debug("Printing workbook part", zap.String("file", src), zap.String("part", part))
	return Show(out, src, part, cmd.Bool("indent"))
}

// List writes table of workbook parts in archive order.
func List(w io.Writer, src string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t %s\n", "method", "size", "packed", "name")

	var total, packed uint64
	count := 0
	err := archive.Walk(src, "", func(_ string, f *zip.File) error {
		count++
		total += f.UncompressedSize64
		packed += f.CompressedSize64
		fmt.Fprintf(tw, "%s\t%d\t%d\t %s\n", methodName(f.Method), f.UncompressedSize64, f.CompressedSize64, f.Name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to read workbook '%s': %w", src, err)
	}
	fmt.Fprintf(tw, "\t%d\t%d\t %d part(s) in %s\n", total, packed, count, filepath.Base(src))
	return tw.Flush()
}

// Show writes content of a single part. XML parts could be re-indented for
// reading.
func Show(w io.Writer, src, part string, indent bool) error {
	data, err := archive.ReadEntry(src, part)
	if err != nil {
		return fmt.Errorf("unable to read workbook '%s': %w", src, err)
	}
	if !indent || !isXML(part) {
		_, err = w.Write(data)
		return err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("part %s is not well formed: %w", part, err)
	}
	doc.Indent(2)
	_, err = doc.WriteTo(w)
	return err
}

func isXML(name string) bool {
	switch filepath.Ext(name) {
	case ".xml", ".rels", ".vml":
		return true
	}
	return false
}

func methodName(m uint16) string {
	switch m {
	case zip.Store:
		return "stored"
	case zip.Deflate:
		return "deflated"
	}
	return fmt.Sprintf("method(%d)", m)
}
