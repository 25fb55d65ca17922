package cryptoalg

import "math/big"

// RandomSource supplies fixed-width random words used to seed big integers.
// Implementations are not required to be safe for concurrent use; every goroutine owns its own source.
type RandomSource interface {
	// NextLimb returns the next uniformly distributed machine word.
	// It has no error return: a source that cannot produce a word, such as one
	// backed by a failing io.Reader, panics. Seeded math/rand sources never do.
	NextLimb() big.Word
}

// PrimalityTester decides with tunable confidence whether n is prime.
type PrimalityTester interface {
	// IsProbablyPrime runs the given number of independent rounds.
	// A composite verdict is always correct, a prime verdict may be a false positive.
	IsProbablyPrime(n *big.Int, rounds int) bool
}

// PrimeGenerator produces primes of an exact bit length.
type PrimeGenerator interface {
	// GeneratePrime returns a probable prime whose bit length is exactly bitLength.
	GeneratePrime(bitLength int) (*big.Int, error)
}

// KeyDeriver combines two primes into a key pair.
type KeyDeriver interface {
	// DeriveKeys generates two distinct primes of keyBitLength/2 bits each and derives (e, d, n).
	DeriveKeys(keyBitLength int) (*KeyPair, error)

	// DeriveFromPrimes derives (e, d, n) from the given primes.
	DeriveFromPrimes(p, q *big.Int) (*KeyPair, error)
}

// PayloadCodec converts payload bytes to and from an integer.
type PayloadCodec interface {
	// Kind reports which encoding the codec implements.
	Kind() EncodingKind

	// Encode maps a payload to its integer representation.
	Encode(payload []byte) (*big.Int, error)

	// Decode maps an integer back to payload bytes.
	// Leading zero bytes of the original payload are not recovered.
	Decode(value *big.Int) ([]byte, error)
}

// Transformer applies the RSA modular exponentiation.
type Transformer interface {
	// Transform computes input^exponent mod modulus, rejecting input outside [0, modulus).
	Transform(input, exponent, modulus *big.Int) (*big.Int, error)
}

// RSAProcessor handles textbook RSA operations end to end.
// NOTE: no padding is applied and the whole payload must fit below the modulus.
type RSAProcessor interface {
	// GenerateKeys derives a key pair whose modulus is built from two primes of keySize/2 bits.
	GenerateKeys(keySize int) (*KeyPair, error)

	// Encrypt transforms the payload with the public key half.
	Encrypt(payload []byte, publicKey Key, kind EncodingKind) ([]byte, error)

	// Decrypt transforms the payload with the private key half.
	Decrypt(payload []byte, privateKey Key, kind EncodingKind) ([]byte, error)

	// SavePublicKeyToFile writes the public exponent and modulus as two decimal lines.
	SavePublicKeyToFile(keyPair *KeyPair, filename string) error

	// SavePrivateKeyToFile writes the private exponent and modulus as two decimal lines.
	SavePrivateKeyToFile(keyPair *KeyPair, filename string) error

	// ReadKey reads a key half written by SavePublicKeyToFile or SavePrivateKeyToFile.
	ReadKey(filename string) (Key, error)
}
