package cli

import (
	"io"
	"os"

	"github.com/ka2n/minigrep/config"
	"github.com/ka2n/minigrep/log"
	"github.com/ka2n/minigrep/search"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func newRootCmd(program string, lookup config.LookupFunc) *cobra.Command {
	var cfg config.Config

	return &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a text file and prints every line containing the query.

Set IGNORE_CASE (to any value, even empty) to compare case-insensitively:

  IGNORE_CASE=1 minigrep to poem.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.New(append([]string{program}, args...), lookup)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("configuration resolved",
				"query", cfg.Query,
				"filename", cfg.Filename,
				"ignore_case", cfg.IgnoreCase,
			)
			return Search(cmd.OutOrStdout(), cfg)
		},
	}
}

// Run executes minigrep for the full argument vector argv, program name
// first, writing matches to out.
//
// The root command's hooks are called directly instead of through Execute
// so that no argument is ever taken as a flag or a completion request.
func Run(out io.Writer, argv []string, lookup config.LookupFunc) error {
	log.Debug("starting", versionAttrs()...)

	program := "minigrep"
	args := []string{}
	if len(argv) > 0 {
		program = argv[0]
		args = append(args, argv[1:]...)
	}

	cmd := newRootCmd(program, lookup)
	cmd.SetOut(out)
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}
	return cmd.RunE(cmd, args)
}

// Search reads cfg.Filename and writes each line containing cfg.Query to w,
// in file order.
func Search(w io.Writer, cfg config.Config) error {
	contents, err := readContents(cfg.Filename)
	if err != nil {
		return err
	}
	log.Debug("file loaded", "filename", cfg.Filename, "bytes", len(contents))

	matches := search.For(cfg.IgnoreCase)(cfg.Query, contents)
	log.Debug("search finished", "matches", len(matches))

	out := newLineWriter(w)
	for _, line := range matches {
		if err := out.WriteLine(line); err != nil {
			return writeFailed(err)
		}
	}
	if err := out.Flush(); err != nil {
		return writeFailed(err)
	}
	return nil
}

func readContents(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(ReadFailed),
			failure.Message(err.Error()),
			failure.Context{
				"filename": filename,
			},
		)
	}

	contents, _, err := transform.String(encoding.UTF8Validator, string(b))
	if err != nil {
		return "", failure.Wrap(err, failure.WithCode(InvalidEncoding),
			failure.Message("stream did not contain valid UTF-8"),
			failure.Context{
				"filename": filename,
			},
		)
	}
	return contents, nil
}

func writeFailed(err error) error {
	return failure.Wrap(err, failure.WithCode(WriteFailed),
		failure.Message(err.Error()),
	)
}
