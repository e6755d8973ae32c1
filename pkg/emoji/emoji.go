// Package emoji implements the emoji byte encoding used as the fallback
// textual form of public keys. Each byte maps to one emoji from a fixed
// 256-rune alphabet, so encoding and decoding are exact inverses.
package emoji

import "fmt"

// The alphabet is the contiguous emoji block U+1F400..U+1F4FF. All 256 code
// points are assigned, single-rune emoji, which keeps the byte<->rune
// mapping trivial and stable.
const alphabetBase = rune(0x1F400)

const alphabetSize = 256

func Encode(data []byte) string {
	out := make([]rune, len(data))
	for i, b := range data {
		out[i] = alphabetBase + rune(b)
	}
	return string(out)
}

func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/4)
	for _, r := range s {
		if r < alphabetBase || r >= alphabetBase+alphabetSize {
			return nil, fmt.Errorf("rune %q is not part of the emoji alphabet", r)
		}
		out = append(out, byte(r-alphabetBase))
	}
	return out, nil
}
