package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PhraseSalt is fixed so the same phrase always yields the same seed,
	// on any machine and in any build.
	PhraseSalt       = "date-shift/seed/v1"
	PBKDF2Iterations = 100000
	seedBytes        = 8
)

// Build-time embedded seed phrase. Empty when not provided.
// Set with: -ldflags "-X 'date-shift/internal/seed.EmbeddedSeedPhrase=PHRASE'"
var EmbeddedSeedPhrase string

// FromPhrase derives a run seed from a passphrase. Teams that share a phrase
// get identical anonymization across machines without passing raw seeds around.
func FromPhrase(phrase string) (int64, error) {
	trimmed := strings.TrimSpace(phrase)
	if trimmed == "" {
		return 0, errors.New("seed phrase cannot be empty")
	}
	key := pbkdf2.Key([]byte(trimmed), []byte(PhraseSalt), PBKDF2Iterations, seedBytes, sha256.New)
	return int64(binary.BigEndian.Uint64(key)), nil
}

// Random returns a seed drawn from the operating system's CSPRNG, for runs
// where reproducibility was not requested.
func Random() (int64, error) {
	buf := make([]byte, seedBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return 0, fmt.Errorf("failed to generate random seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(buf)), nil
}

// Derive mixes the run seed with a stream name (conventionally a file's
// slash-relative path) into an independent per-stream seed. The mix is a
// SplitMix64 finalizer over the run seed and an FNV-1a hash of the name, so
// the result depends only on the inputs, never on processing order.
func Derive(base int64, name string) int64 {
	h := fnv.New64a()
	io.WriteString(h, name)

	z := uint64(base) + h.Sum64()*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// HasEmbeddedPhrase reports whether a build-time seed phrase is present.
func HasEmbeddedPhrase() bool {
	return strings.TrimSpace(EmbeddedSeedPhrase) != ""
}

// FromEmbeddedPhrase derives the run seed from the build-time phrase.
func FromEmbeddedPhrase() (int64, error) {
	if !HasEmbeddedPhrase() {
		return 0, errors.New("no embedded seed phrase available")
	}
	return FromPhrase(EmbeddedSeedPhrase)
}
