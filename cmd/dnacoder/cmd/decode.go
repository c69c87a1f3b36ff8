package cmd

import "github.com/spf13/cobra"

func newDecodeCmd(a *app) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <input> <output>",
		Short: "Decode a nucleotide text resource into a plain file",
		Long: `Decode detects the variant from the resource header. The compression must
match the one used when encoding.

Example:
  dnacoder decode data.dna data.bin --compression zstd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			res, err := c.DecodeFile(args[0], args[1])
			if err != nil {
				return err
			}
			printResult(cmd, "decoded", args[0], args[1], res)

			return nil
		},
	}

	decodeCmd.Flags().String("compression", "", "Payload compression: none, zstd, s2 or lz4")

	return decodeCmd
}
