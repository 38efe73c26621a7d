// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/vztape"
	"github.com/ik5/vztape/formats/vz"
)

func newEncodeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <in.vz> <out.wav>",
		Short: "Render a .vz image as an 8-bit mono WAV recording",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := o.encoder(cmd)
			if err != nil {
				return err
			}

			img, err := vz.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := vztape.EncodeFile(args[1], img, enc); err != nil {
				return err
			}

			n := enc.SampleCount(img)
			o.logger.Debug("encoded",
				"in", args[0],
				"out", args[1],
				"filename", string(img.WireName()),
				"samples", n,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d samples, %.2f s\n",
				args[1], n, float64(n)/float64(enc.Params.SampleRate))

			return nil
		},
	}
}
