// Package main is the entry point for the rsa-cli application.
// It registers the key generation and file transform commands and executes the CLI.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/ingver/rsa/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA key generation and file encryption",
		Long: `rsa-cli generates RSA key pairs from Fermat-tested primes and encrypts or
decrypts a single file as one integer modulo n. There is no padding: a payload
must be numerically smaller than the modulus.

Key files hold two decimal lines, the exponent followed by the modulus.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
