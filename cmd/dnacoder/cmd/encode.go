package cmd

import "github.com/spf13/cobra"

func newEncodeCmd(a *app) *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode <input> <output>",
		Short: "Encode a plain file into a nucleotide text resource",
		Long: `Encode reads any file and writes it as a new resource. An existing output
file is truncated.

Example:
  dnacoder encode data.bin data.dna --variant three --compression zstd`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			res, err := c.EncodeFile(args[0], args[1])
			if err != nil {
				return err
			}
			printResult(cmd, "encoded", args[0], args[1], res)

			return nil
		},
	}

	encodeCmd.Flags().StringP("variant", "v", "", "Codec variant: three (ACG) or four (ACGT)")
	encodeCmd.Flags().String("compression", "", "Payload compression: none, zstd, s2 or lz4")

	return encodeCmd
}
