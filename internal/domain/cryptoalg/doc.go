// Package cryptoalg defines the contracts of the textbook RSA engine: the randomness source,
// primality testing, prime generation, key derivation, payload encoding and the modular transform,
// together with the key types and error values shared by every layer.
package cryptoalg
