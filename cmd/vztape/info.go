// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/vztape/formats/vz"
	"github.com/ik5/vztape/tape"
)

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <in.vz>",
		Short: "Print the header of a .vz image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := vz.ReadFile(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Magic        : %q\n", img.Magic[:])
			printHeader(w, img, img.Checksum())

			if o.verbose {
				enc, err := o.encoder(cmd)
				if err != nil {
					return err
				}
				n := enc.SampleCount(img)
				fmt.Fprintf(w, "Samples      : %d (%.2f s)\n", n, float64(n)/float64(enc.Params.SampleRate))
			}

			return nil
		},
	}
}

func printHeader(w io.Writer, img *tape.Image, checksum uint16) {
	fmt.Fprintf(w, "Filetype     : %02X\n", img.FileType)
	fmt.Fprintf(w, "Filename     : %s\n", img.WireName())
	fmt.Fprintf(w, "Startaddress : %04X\n", img.StartAddress)
	fmt.Fprintf(w, "Endaddress   : %04X\n", img.EndAddress())
	fmt.Fprintf(w, "Length       : %d\n", len(img.Payload))
	fmt.Fprintf(w, "Checksum     : %04X\n", checksum)
}
