package lang

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestProviderInitializesOnce(t *testing.T) {
	var calls atomic.Int32
	p := NewProvider(func() (Capability, error) {
		calls.Add(1)
		return NewRules(10), nil
	}, nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := p.Get()
			if err != nil || c == nil {
				t.Errorf("expected capability, got cap=%v err=%v", c, err)
			}
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Fatalf("initializer ran %d times, want 1", n)
	}
}

func TestProviderFailureIsPermanent(t *testing.T) {
	var calls atomic.Int32
	p := NewProvider(func() (Capability, error) {
		calls.Add(1)
		return nil, errors.New("model load failed")
	}, nil)

	for range 3 {
		if _, err := p.Get(); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("initializer ran %d times after failure, want 1", n)
	}
}

func TestUnavailableProvider(t *testing.T) {
	p := Unavailable()
	if _, err := p.Get(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
