package cuid2

import (
	"errors"
	"sync"
)

// fakePlatform is a deterministic Platform for tests. RandomBytes fills with
// a repeating fill byte and counts draws so tests can assert that validation
// failures consume no entropy.
type fakePlatform struct {
	mu            sync.Mutex
	host          string
	hostErr       error
	pid           int
	env           map[string]string
	randInt64     int64
	fill          byte
	randomDraws   int
	environCalls  int
	hostnameCalls int
}

var errNoHostname = errors.New("hostname unavailable")

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		host:      "testhost",
		pid:       0x04030201,
		env:       map[string]string{"B": "2", "A": "1"},
		randInt64: 7,
		fill:      0xAB,
	}
}

func (f *fakePlatform) RandomBytes(b []byte) {
	f.mu.Lock()
	f.randomDraws++
	f.mu.Unlock()
	for i := range b {
		b[i] = f.fill
	}
}

func (f *fakePlatform) RandomInt64() int64 {
	return f.randInt64
}

func (f *fakePlatform) Hostname() (string, error) {
	f.mu.Lock()
	f.hostnameCalls++
	f.mu.Unlock()
	if f.hostErr != nil {
		return "", f.hostErr
	}
	return f.host, nil
}

func (f *fakePlatform) ProcessID() int { return f.pid }

func (f *fakePlatform) Environ() map[string]string {
	f.mu.Lock()
	f.environCalls++
	f.mu.Unlock()
	env := make(map[string]string, len(f.env))
	for k, v := range f.env {
		env[k] = v
	}
	return env
}

func (f *fakePlatform) draws() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.randomDraws
}
