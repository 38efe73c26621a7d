// SPDX-License-Identifier: EPL-2.0

package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/vztape/formats/cas"
	"github.com/ik5/vztape/formats/vz"
)

func newCasCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cas <in.vz> [out.cas]",
		Short: "Write the raw cassette byte stream of a .vz image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := casPath(args[0])
			if len(args) > 1 {
				out = args[1]
			}

			img, err := vz.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := cas.WriteFile(out, img); err != nil {
				return err
			}

			o.logger.Debug("wrote cassette stream", "out", out, "bytes", cas.Size(img))
			printHeader(cmd.OutOrStdout(), img, img.Checksum())

			return nil
		},
	}
}

// casPath replaces the extension of in with .cas.
func casPath(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".cas"
}
