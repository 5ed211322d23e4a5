package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type window struct {
	count int
	reset time.Time
}

// RateLimit caps requests per client IP inside a fixed window. It
// guards the login route against password guessing; a limit of zero
// disables it. RealIP runs earlier in the chain, so RemoteAddr already
// holds the forwarded client address.
func RateLimit(limit int, per time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	windows := make(map[string]*window)
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}
			mu.Lock()
			now := time.Now()
			win, ok := windows[ip]
			if !ok || now.After(win.reset) {
				win = &window{reset: now.Add(per)}
				windows[ip] = win
			}
			win.count++
			over := win.count > limit
			mu.Unlock()
			if over {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
