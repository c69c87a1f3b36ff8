package cmd

import "github.com/spf13/cobra"

func newTranscodeCmd(a *app) *cobra.Command {
	transcodeCmd := &cobra.Command{
		Use:   "transcode <input> <output>",
		Short: "Re-encode a resource with another variant",
		Long: `Transcode copies the logical content of a resource into a new resource
using the selected variant. A compressed payload is copied unchanged.

Example:
  dnacoder transcode data.dna data3.dna --variant three`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			res, err := c.TranscodeFile(args[0], args[1])
			if err != nil {
				return err
			}
			printResult(cmd, "transcoded", args[0], args[1], res)

			return nil
		},
	}

	transcodeCmd.Flags().StringP("variant", "v", "", "Codec variant: three (ACG) or four (ACGT)")

	return transcodeCmd
}
