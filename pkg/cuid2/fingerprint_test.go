package cuid2

import (
	"bytes"
	"sync"
	"testing"
)

func TestFingerprintDeterministicStructure(t *testing.T) {
	p := newFakePlatform()
	p.host = "host"
	p.pid = 0x04030201
	p.env = map[string]string{"ZZ": "last", "AA": "first", "M": "mid"}

	got := computeFingerprint(p)

	want := []byte("host")
	want = append(want, 0x01, 0x02, 0x03, 0x04) // pid, little-endian
	want = append(want, "AA=firstM=midZZ=last"...)

	if !bytes.Equal(got, want) {
		t.Fatalf("fingerprint mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFingerprintEnvSortedByKey(t *testing.T) {
	p := newFakePlatform()
	p.host = ""
	p.hostErr = nil
	p.pid = 0
	p.env = map[string]string{"b": "2", "B": "1", "a": "3"}

	got := computeFingerprint(p)

	// Byte-wise ascending: uppercase sorts before lowercase.
	want := append([]byte{0, 0, 0, 0}, "B=1a=3b=2"...)
	if !bytes.Equal(got, want) {
		t.Fatalf("env ordering mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestFingerprintStableAcrossCalls(t *testing.T) {
	p := newFakePlatform()
	var f fingerprint

	first := f.get(p)
	for i := 0; i < 100; i++ {
		if got := f.get(p); !bytes.Equal(got, first) {
			t.Fatalf("call %d: fingerprint changed", i)
		}
	}
	if p.environCalls != 1 || p.hostnameCalls != 1 {
		t.Fatalf("expected one computation, got environ=%d hostname=%d", p.environCalls, p.hostnameCalls)
	}
}

func TestFingerprintComputedOnceUnderConcurrency(t *testing.T) {
	p := newFakePlatform()
	var f fingerprint

	const goroutines = 32
	results := make([][]byte, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = f.get(p)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if !bytes.Equal(results[i], results[0]) {
			t.Fatalf("goroutine %d saw a different fingerprint", i)
		}
	}
	if p.environCalls != 1 {
		t.Fatalf("expected one environ read, got %d", p.environCalls)
	}
}

func TestFingerprintHostnameFallback(t *testing.T) {
	p := newFakePlatform()
	p.hostErr = errNoHostname
	p.fill = 0x5A

	got := computeFingerprint(p)

	// 8 random bytes as 16 lowercase hex characters.
	if want := "5a5a5a5a5a5a5a5a"; string(got[:16]) != want {
		t.Fatalf("fallback hostname: got %q, want %q", got[:16], want)
	}
}
