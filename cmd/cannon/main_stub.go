//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of cannon requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/cannon` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless session use `go run ./cmd/cannon-sim`.")
	os.Exit(2)
}
