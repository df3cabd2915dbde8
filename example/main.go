package main

import (
	"fmt"

	eviltwin "github.com/complex-gh/eviltwin_go"
)

func main() {
	src := eviltwin.CryptoSource()
	buf := eviltwin.NewBuffer()

	// Encode a single byte
	a, b := eviltwin.Encode(src, buf, 'x')
	fmt.Printf("Share A: %d\nShare B: %d\n\n", a, b)

	// Decode it back, in either order
	fmt.Printf("Decoded: %q\n", eviltwin.Decode(b, a))
	fmt.Printf("Valid:   %v\n\n", eviltwin.Validate(a, b))

	// What one share tells an attacker
	analysis, err := eviltwin.Candidates(a)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Share A alone: %d hypotheses, %d possible bytes\n\n",
		analysis.Hypotheses, len(analysis.Messages))

	// Split a whole message into two streams
	streamA, streamB := eviltwin.Split(src, []byte("hello, twin"))
	message, err := eviltwin.Combine(streamA, streamB)
	if err != nil {
		fmt.Printf("Error combining: %v\n", err)
		return
	}
	fmt.Printf("Recovered: %s\n", message)
}
