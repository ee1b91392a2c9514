package cuid2

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"strings"
)

// Platform is the narrow OS boundary the generator draws its inputs from.
// Implementations must be safe for concurrent use.
type Platform interface {
	// RandomBytes fills b with cryptographically secure random bytes.
	RandomBytes(b []byte)

	// RandomInt64 returns a cryptographically random 64-bit value.
	RandomInt64() int64

	// Hostname returns the system hostname. Best-effort: the generator
	// substitutes a random value when it fails.
	Hostname() (string, error)

	// ProcessID returns the current process id.
	ProcessID() int

	// Environ returns the process environment. It need not be sorted;
	// the fingerprint sorts by key before use.
	Environ() map[string]string
}

// osPlatform is the default Platform backed by crypto/rand and the os package.
type osPlatform struct{}

func (osPlatform) RandomBytes(b []byte) {
	// crypto/rand.Read never returns an error on supported platforms; a
	// broken system entropy source is not a recoverable condition here.
	if _, err := rand.Read(b); err != nil {
		panic("cuid2: system entropy source failed: " + err.Error())
	}
}

func (p osPlatform) RandomInt64() int64 {
	var b [8]byte
	p.RandomBytes(b[:])
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func (osPlatform) Hostname() (string, error) {
	return os.Hostname()
}

func (osPlatform) ProcessID() int {
	return os.Getpid()
}

func (osPlatform) Environ() map[string]string {
	entries := os.Environ()
	env := make(map[string]string, len(entries))
	for _, kv := range entries {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}
