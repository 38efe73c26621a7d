// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/vztape"
	"github.com/ik5/vztape/formats/vz"
)

func newDecodeCmd(o *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "decode <recording> <out.vz>",
		Short: "Recover a .vz image from a WAV, AIFF or Ogg Vorbis recording",
		Long: `Recover a .vz image from a recording.

The image is written even when its checksum does not match, since a single
damaged byte often leaves the program usable. Use --strict to fail instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := o.decoder(cmd)
			if err != nil {
				return err
			}

			res, err := vztape.DecodeFile(args[0], vztape.NewRegistry(), dec)
			if err != nil {
				return err
			}

			if err := vz.WriteFile(args[1], &res.Image); err != nil {
				return err
			}

			o.logger.Info("decoded",
				"in", args[0],
				"out", args[1],
				"leader_bytes", res.Sync.LeaderBytes,
				"bit_errors", res.BitErrors,
			)
			printHeader(cmd.OutOrStdout(), &res.Image, res.Checksum)

			if err := res.Verify(); err != nil {
				if strict {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; image written anyway\n", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error on checksum mismatch")

	return cmd
}
