package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding dev users into scripts/schema.sql.
func main() {
	passwords := os.Args[1:]
	if len(passwords) == 0 {
		passwords = []string{"demo123", "testpass123"}
	}

	fmt.Println("Generating bcrypt password hashes with DefaultCost (10):")
	fmt.Println()

	for _, password := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash failed for %q: %v\n", password, err)
			os.Exit(1)
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, string(hash))
	}
}
