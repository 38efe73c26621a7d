// SPDX-License-Identifier: EPL-2.0

// Command vztape converts VZ200 tape images to and from cassette audio.
//
//	vztape encode game.vz game.wav
//	vztape decode recording.wav game.vz
//	vztape cas game.vz
//	vztape info game.vz
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
