package main

import (
	"fmt"
	"log"
	"os"

	"codeberg.org/encore/server/internal/auth"
	"github.com/joho/godotenv"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/gentoken <display name>")
		fmt.Println("Example: go run ./scripts/gentoken alice")
		os.Exit(1)
	}

	displayName := os.Args[1]

	token, err := auth.GenerateToken(displayName)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("\n🔑 Gate Token for %q:\n%s\n\n", displayName, token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
