package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedEngine(rate int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	limiter := NewRateLimiter(rate, time.Minute)
	engine.POST("/", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func hit(engine *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	engine := newLimitedEngine(3)

	for i := 0; i < 3; i++ {
		if code := hit(engine, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := hit(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after budget, got %d", code)
	}
}

func TestRateLimiterTracksIPsSeparately(t *testing.T) {
	engine := newLimitedEngine(1)

	if code := hit(engine, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first IP: expected 200, got %d", code)
	}
	if code := hit(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("first IP: expected 429, got %d", code)
	}
	if code := hit(engine, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("second IP: expected 200, got %d", code)
	}
}
