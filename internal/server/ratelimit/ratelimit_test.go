package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		allowed, _, _ := b.take()
		if !allowed {
			t.Errorf("expected request %d to be allowed", i+1)
		}
	}

	if allowed, remaining, _ := b.take(); allowed {
		t.Error("expected 11th request to be denied")
	} else if remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", remaining)
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		b.take()
	}

	time.Sleep(1100 * time.Millisecond)

	if allowed, _, _ := b.take(); !allowed {
		t.Error("expected request to be allowed after refill")
	}
	if allowed, _, _ := b.take(); allowed {
		t.Error("expected request to be denied after consuming refilled token")
	}
}

func TestBucket_ResetTime(t *testing.T) {
	b := newBucket(10, 1.0)

	b.take()
	_, remaining, resetAt := b.take()

	if remaining != 8 {
		t.Errorf("expected 8 remaining, got %d", remaining)
	}
	if resetAt.Before(time.Now()) {
		t.Error("reset time should be in the future")
	}
}

func TestLimiter_DefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
		if !allowed {
			t.Errorf("expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
	if allowed {
		t.Error("expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("expected positive retry-after")
	}
}

func TestLimiter_AnalyzeEndpointBudget(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// POST /analyze bursts at 5, while reads use the lenient default.
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/analyze", "POST")
		if !allowed {
			t.Errorf("expected analyze request %d to be allowed", i+1)
		}
		if info.Limit != 20 {
			t.Errorf("expected limit 20, got %d", info.Limit)
		}
	}
	if allowed, _ := limiter.Allow("127.0.0.1", "/analyze", "POST"); allowed {
		t.Error("expected analyze request beyond burst to be denied")
	}

	allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
	if !allowed {
		t.Error("expected read request to be allowed")
	}
	if info.Limit != 300 {
		t.Errorf("expected default limit 300, got %d", info.Limit)
	}
}

func TestLimiter_PrefixMatch(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// "/analyses/" prefix covers the save subresource.
	_, info := limiter.Allow("127.0.0.1", "/analyses/abc123/save", "POST")
	if info.Limit != 100 {
		t.Errorf("expected prefix-matched limit 100, got %d", info.Limit)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/health", "GET")
		if !allowed {
			t.Errorf("expected health request %d to be allowed", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("expected limit 0 for health, got %d", info.Limit)
		}
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/analyze", "POST"); !allowed {
			t.Errorf("expected whitelisted request %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("192.168.1.1", "/analyses", "GET"); allowed {
		t.Error("expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/analyze", "POST"); !allowed {
			t.Errorf("expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/analyses", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("expected exactly 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_SweepKeepsActiveBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Minute,
		CleanupInterval: 50 * time.Millisecond,
	})
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		if allowed, _ := limiter.Allow(clientID, "/analyses", "GET"); !allowed {
			t.Errorf("expected request from %s to be allowed", clientID)
		}
	}

	time.Sleep(120 * time.Millisecond)

	// Recently used buckets survive the sweep.
	for i := 0; i < 5; i++ {
		clientID := fmt.Sprintf("127.0.0.%d", i+1)
		if allowed, _ := limiter.Allow(clientID, "/analyses", "GET"); !allowed {
			t.Errorf("expected request from %s to still be allowed", clientID)
		}
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/analyses", "GET")
	if !allowed {
		t.Error("expected request to be allowed with default config")
	}
	if info.Limit != 1000 {
		t.Errorf("expected default limit 1000, got %d", info.Limit)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("expected rate limiting to be disabled")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	if !cfg.Enabled {
		t.Error("expected rate limiting enabled by default")
	}
	if cfg.DefaultLimit != 300 {
		t.Errorf("expected default limit 300, got %d", cfg.DefaultLimit)
	}
	if len(cfg.EndpointConfigs) == 0 {
		t.Error("expected endpoint configs to be populated")
	}
}
