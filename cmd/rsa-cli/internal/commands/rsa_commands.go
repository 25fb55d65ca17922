package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/infrastructure/cryptography"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Default file names used when a flag is not given.
const (
	DefaultPublicKeyFile  = "rsa_pub.key"
	DefaultPrivateKeyFile = "rsa_priv.key"
	DefaultInputFile      = "input.txt"
	DefaultOutputFile     = "output.txt"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	logger logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RSACommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *RSACommandHandler) newProcessor(settings *config.KeyGenSettings) (cryptoalg.RSAProcessor, error) {
	random := cryptography.NewTimeSeededRandomSource()
	if settings.Seed != 0 {
		random = cryptography.NewSeededRandomSource(settings.Seed)
	}
	return cryptography.NewRSAProcessor(random, settings, commandHandler.logger)
}

// GenerateRSAKeysCmd generates an RSA key pair and writes both halves to key files
func (commandHandler *RSACommandHandler) GenerateRSAKeysCmd(cmd *cobra.Command, _ []string) error {
	settings := config.NewKeyGenSettings()

	var err error
	if settings.KeySize, err = cmd.Flags().GetInt("key-size"); err != nil {
		return commandHandler.fail("invalid key-size flag", err)
	}
	if settings.Rounds, err = cmd.Flags().GetInt("rounds"); err != nil {
		return commandHandler.fail("invalid rounds flag", err)
	}
	if settings.Seed, err = cmd.Flags().GetInt64("seed"); err != nil {
		return commandHandler.fail("invalid seed flag", err)
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		return commandHandler.fail("invalid public-key flag", err)
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		return commandHandler.fail("invalid private-key flag", err)
	}

	if err := settings.Validate(); err != nil {
		return commandHandler.fail("invalid key generation settings", err)
	}

	processor, err := commandHandler.newProcessor(settings)
	if err != nil {
		return commandHandler.fail("failed to create RSA processor", err)
	}

	keyPair, err := processor.GenerateKeys(settings.KeySize)
	if err != nil {
		return commandHandler.fail("key generation failed", err)
	}

	if err := processor.SavePublicKeyToFile(keyPair, publicKeyPath); err != nil {
		return commandHandler.fail("saving public key failed", err)
	}
	if err := processor.SavePrivateKeyToFile(keyPair, privateKeyPath); err != nil {
		return commandHandler.fail("saving private key failed", err)
	}

	printKeyPair(cmd.OutOrStdout(), keyPair)
	return nil
}

// printKeyPair writes both halves in decimal and in 0x-prefixed hex.
func printKeyPair(w io.Writer, keyPair *cryptoalg.KeyPair) {
	e, d, n := keyPair.PublicExponent, keyPair.PrivateExponent, keyPair.Modulus

	fmt.Fprintln(w, "Generated keys:")
	fmt.Fprintf(w, "{e, n} = {%s, %s}\n", e, n)
	fmt.Fprintf(w, "{d, n} = {%s, %s}\n", d, n)
	fmt.Fprintln(w, "in hex:")
	fmt.Fprintf(w, "{e, n} = {%#x, %#x}\n", e, n)
	fmt.Fprintf(w, "{d, n} = {%#x, %#x}\n", d, n)
}

// EncryptRSACmd encrypts a file with the public key
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.transformFile(cmd, "public-key", func(processor cryptoalg.RSAProcessor, payload []byte, key cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error) {
		return processor.Encrypt(payload, key, kind)
	})
}

// DecryptRSACmd decrypts a file with the private key
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	return commandHandler.transformFile(cmd, "private-key", func(processor cryptoalg.RSAProcessor, payload []byte, key cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error) {
		return processor.Decrypt(payload, key, kind)
	})
}

type transformFunc func(processor cryptoalg.RSAProcessor, payload []byte, key cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error)

func (commandHandler *RSACommandHandler) transformFile(cmd *cobra.Command, keyFlag string, fn transformFunc) error {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return commandHandler.fail("invalid input-file flag", err)
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return commandHandler.fail("invalid output-file flag", err)
	}
	keyPath, err := cmd.Flags().GetString(keyFlag)
	if err != nil {
		return commandHandler.fail("invalid "+keyFlag+" flag", err)
	}
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return commandHandler.fail("invalid encoding flag", err)
	}

	kind, err := cryptoalg.ParseEncodingKind(encoding)
	if err != nil {
		return commandHandler.fail("invalid encoding flag", err)
	}

	processor, err := commandHandler.newProcessor(config.NewKeyGenSettings())
	if err != nil {
		return commandHandler.fail("failed to create RSA processor", err)
	}

	key, err := processor.ReadKey(keyPath)
	if err != nil {
		return commandHandler.fail("reading key failed", err)
	}

	payload, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		return commandHandler.fail("reading input failed", err)
	}

	out, err := fn(processor, payload, key, kind)
	if err != nil {
		return commandHandler.fail("transform failed", err)
	}

	if err := os.WriteFile(filepath.Clean(outputFile), out, 0600); err != nil {
		return commandHandler.fail("writing output failed", err)
	}

	commandHandler.logger.Info("Output written to ", outputFile)
	return nil
}

func (commandHandler *RSACommandHandler) fail(msg string, err error) error {
	commandHandler.logger.Error(fmt.Sprintf("%s: %v", msg, err))
	return fmt.Errorf("%s: %w", msg, err)
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateRSAKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		RunE:  handler.GenerateRSAKeysCmd,
	}
	generateRSAKeysCmd.Flags().IntP("key-size", "", config.DefaultKeySize, "Modulus size in bits, even")
	generateRSAKeysCmd.Flags().IntP("rounds", "", config.DefaultPrimalityRounds, "Fermat rounds per prime candidate")
	generateRSAKeysCmd.Flags().Int64P("seed", "", 0, "Seed for reproducible keys (0 seeds from the clock)")
	generateRSAKeysCmd.Flags().StringP("public-key", "", DefaultPublicKeyFile, "Path of the public key file to write")
	generateRSAKeysCmd.Flags().StringP("private-key", "", DefaultPrivateKeyFile, "Path of the private key file to write")
	rootCmd.AddCommand(generateRSAKeysCmd)

	var encryptRSAFileCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with an RSA public key",
		RunE:  handler.EncryptRSACmd,
	}
	encryptRSAFileCmd.Flags().StringP("input-file", "", DefaultInputFile, "Path to input file which needs to be encrypted")
	encryptRSAFileCmd.Flags().StringP("output-file", "", DefaultOutputFile, "Path to encrypted output file")
	encryptRSAFileCmd.Flags().StringP("public-key", "", DefaultPublicKeyFile, "Path to RSA public key")
	encryptRSAFileCmd.Flags().StringP("encoding", "", string(cryptoalg.EncodingRaw), "Payload encoding: raw or hex")
	rootCmd.AddCommand(encryptRSAFileCmd)

	var decryptRSAFileCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with an RSA private key",
		RunE:  handler.DecryptRSACmd,
	}
	decryptRSAFileCmd.Flags().StringP("input-file", "", DefaultInputFile, "Path to encrypted file")
	decryptRSAFileCmd.Flags().StringP("output-file", "", DefaultOutputFile, "Path to decrypted output file")
	decryptRSAFileCmd.Flags().StringP("private-key", "", DefaultPrivateKeyFile, "Path to RSA private key")
	decryptRSAFileCmd.Flags().StringP("encoding", "", string(cryptoalg.EncodingRaw), "Payload encoding: raw or hex")
	rootCmd.AddCommand(decryptRSAFileCmd)

	return nil
}
