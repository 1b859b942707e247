package xor

import "github.com/tutils/tprng/prng"

// Trial is the outcome of encrypting a message and decrypting it twice, once
// with the right key and once with a key one unit off.
type Trial struct {
	Key               uint64
	Plaintext         string
	Ciphertext        string
	Decrypted         string
	WrongKey          uint64
	WrongKeyDecrypted string
}

// Recovered reports whether decrypting with the right key restored the
// plaintext.
func (t Trial) Recovered() bool {
	return t.Decrypted == t.Plaintext
}

// RoundTrip runs the symmetric cipher over message with g keyed by key, then
// decrypts the ciphertext with key and with key+1. The message is handled as
// a sequence of single-byte character codes; the ciphertext is generally not
// printable.
func RoundTrip(g prng.Generator, key uint64, message string) Trial {
	ciphertext := Transform(g, key, []byte(message))
	decrypted := Transform(g, key, ciphertext)
	wrong := key + 1
	garbled := Transform(g, wrong, ciphertext)

	return Trial{
		Key:               key,
		Plaintext:         message,
		Ciphertext:        string(ciphertext),
		Decrypted:         string(decrypted),
		WrongKey:          wrong,
		WrongKeyDecrypted: string(garbled),
	}
}
