package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"xlsxw/css"
	"xlsxw/state"
	"xlsxw/xlsx"
	"xlsxw/xlsx/format"
)

// Run implements build command: every workbook description found in the
// source is turned into xlsx file under destination.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := env.UseStylesheet(env.Cfg.Workbook.StylesheetPath); err != nil {
		return err
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, loadClasses(env.Stylesheet, env.StylesheetSource, log), log)
}

// loadClasses parses stylesheet, problems are not fatal.
func loadClasses(data []byte, source string, log *zap.Logger) map[string]*format.Format {
	sheet := css.NewParser(log).Parse(data, source)
	classes := sheet.Formats()
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("source", source), zap.String("warning", w))
	}
	return classes
}

func isDescription(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// process handles single description or directory of them.
func process(ctx context.Context, src, dst string, classes map[string]*format.Format, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found: %w", err)
	}
	if fi.IsDir() {
		if err := processDir(ctx, src, dst, classes, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	}
	if !fi.Mode().IsRegular() || !isDescription(src) {
		return fmt.Errorf("input was not recognized as workbook description (%s)", src)
	}
	return processDescription(ctx, src, filepath.Base(src), dst, classes, log)
}

// processDir finds descriptions in the directory tree and builds them in
// natural order of their relative paths. Failed descriptions are logged and
// do not stop processing.
func processDir(ctx context.Context, dir, dst string, classes map[string]*format.Format, log *zap.Logger) error {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !isDescription(path) {
			log.Debug("Skipping file, not a workbook description", zap.String("file", path))
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, rel)
		return nil
	})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
		return nil
	}

	sort.Sort(natural.StringSlice(names))
	for _, rel := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := processDescription(ctx, filepath.Join(dir, rel), rel, dst, classes, log); err != nil {
			log.Error("Unable to process file", zap.String("file", rel), zap.Error(err))
		}
	}
	return nil
}

// processDescription builds single workbook. "src" is path of description
// relative to the source, it defines output location under "dst".
func processDescription(ctx context.Context, path, src, dst string, classes map[string]*format.Format, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string
	log.Info("Build starting", zap.String("from", src))
	defer func(start time.Time) {
		if rerr == nil {
			log.Info("Build completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	desc, err := ReadDescription(file)
	file.Close()
	if err != nil {
		return fmt.Errorf("unable to parse workbook description (%s): %w", src, err)
	}

	if desc.Stylesheet != "" {
		sheetPath := desc.Stylesheet
		if !filepath.IsAbs(sheetPath) {
			sheetPath = filepath.Join(filepath.Dir(path), sheetPath)
		}
		data, err := os.ReadFile(sheetPath)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", sheetPath, err)
		}
		merged := maps.Clone(classes)
		if merged == nil {
			merged = make(map[string]*format.Format)
		}
		maps.Copy(merged, loadClasses(data, sheetPath, log))
		classes = merged
	}

	formats, err := resolveFormats(classes, desc.Formats)
	if err != nil {
		return fmt.Errorf("unable to resolve formats: %w", err)
	}

	wb, err := buildWorkbook(desc, formats,
		xlsx.WithLogger(log),
		xlsx.WithProperties(workbookProperties(desc, env, log)),
		xlsx.WithFixZip(env.Cfg.Workbook.FixZip),
		xlsx.WithCompression(env.Cfg.Workbook.Compression.Level()))
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Warn("Description problem", zap.String("file", src), zap.Error(e))
		}
		return fmt.Errorf("workbook description has %d problem(s)", len(multierr.Errors(err)))
	}

	outputName = buildOutputPath(desc, src, dst, env)
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := wb.Save(outputName); err != nil {
		return fmt.Errorf("unable to save workbook: %w", err)
	}

	if env.Rpt != nil {
		key := filepath.ToSlash(strings.TrimSuffix(src, filepath.Ext(src)))
		if err := env.Rpt.StoreCopy("source-"+key+filepath.Ext(src), path); err != nil {
			log.Debug("Unable to store description in report", zap.Error(err))
		}
		env.Rpt.Store("result-"+key+workbookExt, outputName)
		env.Rpt.StoreData("styles-"+key+".txt", []byte(wb.Styles().Dump()))
	}
	return nil
}

// workbookProperties puts description properties over configured defaults.
func workbookProperties(desc *Description, env *state.LocalEnv, log *zap.Logger) xlsx.Properties {
	defaults := env.Cfg.Workbook.Properties
	pick := func(v, def string) string {
		if v != "" {
			return v
		}
		return def
	}
	p := desc.Properties
	return xlsx.Properties{
		Title:         p.Title,
		Subject:       p.Subject,
		Author:        pick(p.Author, defaults.Author),
		Manager:       pick(p.Manager, defaults.Manager),
		Company:       pick(p.Company, defaults.Company),
		Category:      pick(p.Category, defaults.Category),
		Keywords:      pick(p.Keywords, defaults.Keywords),
		Comments:      pick(p.Comments, defaults.Comments),
		Status:        p.Status,
		Language:      parseLanguage(pick(p.Language, defaults.Language), log),
		HyperlinkBase: p.HyperlinkBase,
	}
}

// parseLanguage accepts BCP 47 tag or language name in its own language.
func parseLanguage(in string, log *zap.Logger) language.Tag {
	lang := strings.TrimSpace(in)
	if lang == "" {
		return language.Und
	}
	if tag, err := language.Parse(lang); err == nil {
		return tag
	}
	for _, tag := range display.Supported.Tags() {
		if strings.EqualFold(display.Self.Name(tag), lang) {
			return tag
		}
	}
	log.Warn("Unable to parse workbook language", zap.String("lang", lang))
	return language.Und
}
