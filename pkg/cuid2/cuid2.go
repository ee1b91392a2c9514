package cuid2

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/sha3"
)

// Length bounds for generated identifiers. Shorter IDs collide more easily;
// longer ones carry more entropy.
const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 24
)

// nanosPerTick converts wall-clock nanoseconds to 100-nanosecond ticks.
const nanosPerTick = 100

// nowTicks returns the current time as 100-nanosecond ticks since the Unix
// epoch. It is a variable so tests can override it.
var nowTicks = func() int64 { return time.Now().UnixNano() / nanosPerTick }

// Generator produces CUID2 identifiers. It owns the process-scoped state:
// the monotonic counter and the host fingerprint, each initialized lazily
// exactly once. Safe for concurrent use.
type Generator struct {
	platform    Platform
	counter     counter
	fingerprint fingerprint
}

// New returns a Generator backed by the operating system: crypto/rand for
// entropy and the os package for hostname, pid, and environment.
func New() *Generator { return NewWithPlatform(osPlatform{}) }

// NewWithPlatform returns a Generator drawing its inputs from p.
func NewWithPlatform(p Platform) *Generator { return &Generator{platform: p} }

// Generate returns a new identifier of DefaultLength characters.
func (g *Generator) Generate() (string, error) { return g.GenerateLength(DefaultLength) }

// GenerateLength returns a new identifier of exactly length characters,
// length in [MinLength, MaxLength]. An out-of-range length fails with
// ErrLengthOutOfRange before any side effect: no randomness is consumed and
// the counter does not advance.
func (g *Generator) GenerateLength(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: got %d", ErrLengthOutOfRange, length)
	}

	timestamp := nowTicks()
	count := g.counter.next(g.platform)
	fp := g.fingerprint.get(g.platform)

	random := make([]byte, length)
	g.platform.RandomBytes(random)

	var pb [1]byte
	g.platform.RandomBytes(pb[:])
	prefix := 'a' + pb[0]%26

	// Hash input layout is fixed with no length prefixes:
	// timestamp LE8 | counter LE8 | fingerprint | random.
	input := make([]byte, 0, 16+len(fp)+len(random))
	input = binary.LittleEndian.AppendUint64(input, uint64(timestamp))
	input = binary.LittleEndian.AppendUint64(input, uint64(count))
	input = append(input, fp...)
	input = append(input, random...)

	h := sha3.New512()
	if _, err := h.Write(input); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	digest := h.Sum(nil)

	return formatResult(prefix, encodeBase36(digest), length), nil
}

// formatResult assembles prefix + the first length-1 encoded characters.
// A 512-bit digest always encodes to well over 31 base-36 digits, so the
// truncation never under-runs in practice; if the encoding were ever shorter
// the full string is emitted unpadded.
func formatResult(prefix byte, encoded string, length int) string {
	if need := length - 1; len(encoded) > need {
		encoded = encoded[:need]
	}
	return string(prefix) + encoded
}

// defaultGenerator backs the package-level convenience functions.
var defaultGenerator = sync.OnceValue(New)

// Generate returns a new identifier of DefaultLength characters from the
// package default Generator.
func Generate() (string, error) { return defaultGenerator().Generate() }

// GenerateLength returns a new identifier of exactly length characters from
// the package default Generator.
func GenerateLength(length int) (string, error) { return defaultGenerator().GenerateLength(length) }
