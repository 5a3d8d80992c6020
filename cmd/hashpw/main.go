// Command hashpw prints an argon2id hash suitable for the
// METRICS_PORTAL_PASSWORD setting, so the plaintext never has to live in the
// deployment environment.
package main

import (
	"fmt"
	"os"

	"github.com/Mayaverse-dev/Maya-Dashboard/internal/security"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := security.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashpw:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
