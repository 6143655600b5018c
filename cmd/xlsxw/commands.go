package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"xlsxw/config"
	"xlsxw/convert"
	"xlsxw/inspect"
	"xlsxw/state"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:         "build",
		Usage:        "Builds xlsx workbook(s) from YAML description(s)",
		OnUsageError: onUsageError,
		Action:       convert.Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
		},
		ArgsUsage: "SOURCE [DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to workbook description(s) to process:
        path to a file: "[path_to_file]file.yaml" (or .yml)
        path to a directory: "[path_to_directory]directory" - recursively process all descriptions under directory (symbolic links are not followed)

    Named cell formats come from stylesheet (CSS subset), see "workbook.stylesheet_path"
    configuration value, and could be extended by the description itself.

DESTINATION:
    always a path, output file name(s) will be derived from description and configuration
    if absent - current working directory
`, cli.CommandHelpTemplate),
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:         "inspect",
		Usage:        "Lists parts of xlsx file or prints content of a single part",
		OnUsageError: onUsageError,
		Action:       inspect.Run,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "indent", Aliases: []string{"i"}, Usage: "re-indent XML part for reading"},
		},
		ArgsUsage: "WORKBOOK [PART]",
		CustomHelpTemplate: fmt.Sprintf(`%s
WORKBOOK:
    path to xlsx file (any zip container will do)

PART:
    name of the part inside workbook, for example "xl/styles.xml"
    if absent - list of all parts with their sizes is printed
`, cli.CommandHelpTemplate),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: onUsageError,
		Action:       dumpConfiguration,
		ArgsUsage:    "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Active configuration is default values overlaid with values from the
configuration file. Use --default to see configuration embedded into the
program.
`, cli.CommandHelpTemplate),
	}
}

func dumpConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	kind, data := "actual", []byte(nil)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	var out io.Writer = os.Stdout
	fname := cmd.Args().Get(0)
	if fname != "" {
		f, cerr := os.Create(fname)
		if cerr != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, cerr)
		}
		defer func() {
			if e := f.Close(); e != nil && err == nil {
				err = e
			}
		}()
		out = f
	} else {
		fname = "STDOUT"
	}
	env.Log.Info("Writing configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
