package cuid2

import (
	"encoding/binary"
	"encoding/hex"
	"sort"
	"sync"
)

// fingerprint is an immutable byte sequence identifying this host and
// process. It is computed exactly once per process and cached; repeated
// reads within one process are byte-identical.
type fingerprint struct {
	once sync.Once
	data []byte
}

// get returns the cached fingerprint, computing it on first use.
func (f *fingerprint) get(p Platform) []byte {
	f.once.Do(func() {
		f.data = computeFingerprint(p)
	})
	return f.data
}

// computeFingerprint concatenates, in order: the raw hostname bytes, the
// 4-byte little-endian process id, then key=value for every environment
// variable sorted byte-wise ascending by key, with no separator between
// successive pairs.
func computeFingerprint(p Platform) []byte {
	host, err := p.Hostname()
	if err != nil {
		host = randomHexHostname(p)
	}

	env := p.Environ()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	size := len(host) + 4
	for _, k := range keys {
		size += len(k) + 1 + len(env[k])
	}

	buf := make([]byte, 0, size)
	buf = append(buf, host...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.ProcessID()))
	for _, k := range keys {
		buf = append(buf, k...)
		buf = append(buf, '=')
		buf = append(buf, env[k]...)
	}
	return buf
}

// randomHexHostname is the fallback when hostname retrieval fails: 8 random
// bytes rendered as 16 lowercase hex characters, so fingerprint computation
// never errors.
func randomHexHostname(p Platform) string {
	var b [8]byte
	p.RandomBytes(b[:])
	return hex.EncodeToString(b[:])
}
