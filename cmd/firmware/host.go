//go:build !tinygo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "firmware: build with tinygo for a device target; use cmd/drnet on a host")
	os.Exit(2)
}
