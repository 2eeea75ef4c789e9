package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Browsing a listing fires a page load plus a couple of API calls, so
// the per-visitor budget is looser than a typical JSON API.
const (
	requestsPerSecond = 5
	burst             = 10
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// GetVisitor returns the limiter for the address, creating one on
// first sight.
func GetVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(requestsPerSecond, burst)
		visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop drops limiters for addresses not seen for a
// while. Run it once, in the background.
func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllVisitors resets the visitor table; used by tests.
func CleanupAllVisitors() {
	mu.Lock()
	defer mu.Unlock()
	visitors = make(map[string]*visitor)
}
