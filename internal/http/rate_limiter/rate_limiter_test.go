package rate_limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddlewareLimitsPerClient(t *testing.T) {
	Configure(0.001, 2)
	t.Cleanup(func() {
		CleanupAllVisitors()
		Configure(1, 3)
	})

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/assets", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	for i := range 2 {
		if code := call("10.0.0.1:5000"); code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, code)
		}
	}
	if code := call("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", code)
	}
	if code := call("10.0.0.2:5000"); code != http.StatusNoContent {
		t.Errorf("other clients should not be limited, got %d", code)
	}
}

func TestSweepDropsIdleVisitors(t *testing.T) {
	t.Cleanup(CleanupAllVisitors)

	GetVisitor("192.168.1.10")
	mu.Lock()
	visitors["192.168.1.10"].lastSeen = time.Now().Add(-time.Hour)
	mu.Unlock()
	GetVisitor("192.168.1.11")

	sweep(5 * time.Minute)

	mu.Lock()
	defer mu.Unlock()
	if _, ok := visitors["192.168.1.10"]; ok {
		t.Error("idle visitor should be removed")
	}
	if _, ok := visitors["192.168.1.11"]; !ok {
		t.Error("active visitor should be kept")
	}
}
