package main

import (
	"flag"
	"fmt"
	"os"

	"talento-local-backend/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

// Prints bcrypt hashes compatible with stored user passwords, for loading
// fixture accounts by hand:
//
//	go run ./scripts/genhash.go Passw0rd Otra1234
func main() {
	cost := flag.Int("cost", 10, "bcrypt cost")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: genhash [-cost N] password...")
		os.Exit(2)
	}

	validate := validation.New()
	for _, pass := range flag.Args() {
		if err := validate.Var(pass, "strong_password"); err != nil {
			fmt.Printf("Password: %s\nWarning: does not meet the registration password rules\n", pass)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), *cost)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, string(hash))
	}
}
