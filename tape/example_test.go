// SPDX-License-Identifier: EPL-2.0

package tape_test

import (
	"fmt"

	"github.com/ik5/vztape/tape"
)

func Example() {
	img := &tape.Image{
		Header: tape.Header{
			Filename:     "HELLO",
			FileType:     tape.TypeBasic,
			StartAddress: 0x7AE9,
		},
		Payload: []byte{0x01, 0x02, 0x03},
	}

	samples, err := tape.NewEncoder().Encode(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("samples:", len(samples))

	res, err := tape.NewDecoder().Decode(samples)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s %q 0x%04X-0x%04X % X\n",
		res.Magic[:], res.Filename, res.StartAddress, res.EndAddress, res.Payload)
	fmt.Printf("checksum 0x%04X, verify: %v\n", res.Checksum, res.Verify())

	// Output:
	// samples: 129415
	// VZF0 "HELLO" 0x7AE9-0x7AEC 01 02 03
	// checksum 0x02CF, verify: <nil>
}

func ExampleParams_Classify() {
	p := tape.DefaultParams()
	for _, n := range []int{8, 12, 16, 24, 40} {
		fmt.Println(n, p.Classify(n))
	}

	// Output:
	// 8 ERROR
	// 12 SHORT
	// 16 ERROR
	// 24 LONG
	// 40 ERROR
}
