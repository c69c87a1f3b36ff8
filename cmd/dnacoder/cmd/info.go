package cmd

import (
	"errors"
	"os"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/internal/logging"
	"github.com/arloliu/dnacoder/section"
	"github.com/arloliu/dnacoder/stream"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <resource>",
		Short: "Show the variant and lengths of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := stream.OpenReadOnly(args[0])
			if errors.Is(err, errs.ErrUnrecognizedFormat) {
				return printPlainInfo(cmd, args[0])
			}
			if err != nil {
				return err
			}
			defer s.Close()

			length, err := s.Length()
			if err != nil {
				return err
			}
			raw, err := s.RawLength()
			if err != nil {
				return err
			}

			cmd.Printf("file:        %s\n", args[0])
			cmd.Printf("format:      encoded\n")
			cmd.Printf("header:      %s\n", s.Header())
			cmd.Printf("word length: %d\n", s.WordLength())
			cmd.Printf("length:      %d\n", length)
			cmd.Printf("raw length:  %d\n", raw)
			if trailing := (raw - section.HeaderSize) % int64(s.WordLength()); trailing > 0 {
				a.logger.Warn("resource ends with a partial codeword", logging.Fields{
					"file":           args[0],
					"trailing_bytes": trailing,
				})
			}

			return nil
		},
	}
}

// printPlainInfo describes a file without a known header as plain data.
func printPlainInfo(cmd *cobra.Command, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	cmd.Printf("file:        %s\n", path)
	cmd.Printf("format:      plain\n")
	cmd.Printf("size:        %d\n", info.Size())

	return nil
}
