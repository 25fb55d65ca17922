package cryptography

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	mu        sync.Mutex
	primes    *statsRecorder
	deriver   *KeyDeriver
	transform cryptoalg.Transformer
	logger    logger.Logger
}

// NewRSAProcessor creates a textbook RSA processor whose prime search draws from random.
// Key generation is serialized because the random source is not safe for concurrent use.
func NewRSAProcessor(random cryptoalg.RandomSource, settings *config.KeyGenSettings, logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if settings == nil {
		settings = config.NewKeyGenSettings()
	}

	generator := NewPrimeGenerator(
		random,
		NewFermatTester(random),
		WithRounds(settings.Rounds),
		WithMaxIterations(settings.MaxIterations),
	)
	primes := &statsRecorder{generator: generator}

	return &rsaProcessor{
		primes:    primes,
		deriver:   NewKeyDeriver(primes, settings.MaxDistinctAttempts),
		transform: NewTransformEngine(),
		logger:    logger,
	}, nil
}

// GenerateKeys derives a key pair from two keySize/2-bit primes.
func (r *rsaProcessor) GenerateKeys(keySize int) (*cryptoalg.KeyPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.primes.reset()
	keyPair, err := r.deriver.DeriveKeys(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	r.logger.Debug(fmt.Sprintf("Prime search drew %d candidates and ran %d primality tests", r.primes.stats.Candidates, r.primes.stats.Tests))
	r.logger.Info(fmt.Sprintf("Generated RSA key pair with a %d-bit modulus", keyPair.BitLen()))
	return keyPair, nil
}

// Encrypt transforms the payload with the public exponent.
func (r *rsaProcessor) Encrypt(payload []byte, publicKey cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error) {
	out, err := r.apply(payload, publicKey, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return out, nil
}

// Decrypt transforms the payload with the private exponent.
func (r *rsaProcessor) Decrypt(payload []byte, privateKey cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error) {
	out, err := r.apply(payload, privateKey, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt payload: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return out, nil
}

func (r *rsaProcessor) apply(payload []byte, key cryptoalg.Key, kind cryptoalg.EncodingKind) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	codec, err := NewPayloadCodec(kind)
	if err != nil {
		return nil, err
	}

	input, err := codec.Encode(payload)
	if err != nil {
		return nil, err
	}

	output, err := r.transform.Transform(input, key.Exponent, key.Modulus)
	if err != nil {
		return nil, err
	}

	return codec.Decode(output)
}

// SavePublicKeyToFile writes e and n as two decimal lines.
func (r *rsaProcessor) SavePublicKeyToFile(keyPair *cryptoalg.KeyPair, filename string) error {
	if keyPair == nil {
		return fmt.Errorf("key pair cannot be nil")
	}
	if err := r.saveKey(keyPair.PublicKey(), filename); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// SavePrivateKeyToFile writes d and n as two decimal lines.
func (r *rsaProcessor) SavePrivateKeyToFile(keyPair *cryptoalg.KeyPair, filename string) error {
	if keyPair == nil {
		return fmt.Errorf("key pair cannot be nil")
	}
	if err := r.saveKey(keyPair.PrivateKey(), filename); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

func (r *rsaProcessor) saveKey(key cryptoalg.Key, filename string) error {
	data, err := cryptoalg.MarshalKey(key)
	if err != nil {
		return err
	}

	file, err := os.Create(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			r.logger.Warn(fmt.Sprintf("failed to close file %s: %v", filename, err))
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// ReadKey reads a key half from a two-line decimal key file.
func (r *rsaProcessor) ReadKey(filename string) (cryptoalg.Key, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return cryptoalg.Key{}, fmt.Errorf("unable to read key file: %w", err)
	}

	key, err := cryptoalg.UnmarshalKey(data)
	if err != nil {
		return cryptoalg.Key{}, fmt.Errorf("unable to parse key file %s: %w", filename, err)
	}
	return key, nil
}

// statsRecorder accumulates PrimeSearchStats across the searches of one key derivation.
type statsRecorder struct {
	generator *PrimeGenerator
	stats     PrimeSearchStats
}

func (s *statsRecorder) GeneratePrime(bitLength int) (*big.Int, error) {
	p, stats, err := s.generator.GeneratePrimeWithStats(bitLength)
	s.stats.Candidates += stats.Candidates
	s.stats.Tests += stats.Tests
	return p, err
}

func (s *statsRecorder) reset() {
	s.stats = PrimeSearchStats{}
}
