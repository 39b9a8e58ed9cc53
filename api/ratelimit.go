package api

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/accessviewafrica/summit-registration/config"
	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "summit:ratelimit"

var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

type bucketResult struct {
	allowed    bool
	remaining  int64
	retryAfter time.Duration
}

// rateLimitMiddleware applies a per client token bucket kept in Redis to one
// operation. With no Redis configured, or when Redis errors, requests pass
// through.
func (a *API) rateLimitMiddleware(limitedOperation string) StrictMiddlewareFunc {
	return func(f StrictHandlerFunc, operationID string) StrictHandlerFunc {
		if a.redis == nil || operationID != limitedOperation {
			return f
		}

		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			logger := a.getLoggerOrBaseLogger(ctx)
			key := strings.Join([]string{rateLimitPrefix, operationID, a.clientIP(r)}, ":")

			result, err := takeToken(ctx, a.redis, key, a.rateLimit, time.Now())
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", slog.String("error", err.Error()))
				return f(ctx, w, r, request)
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(a.rateLimit.Capacity))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result.remaining, 10))

			if !result.allowed {
				secs := int(math.Ceil(result.retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.Warn("Rate limit exceeded", slog.String("operation", operationID))
				// a nil response tells the strict handler the reply is written
				writeError(w, logger, http.StatusTooManyRequests, TooManyRequests, "Too many status checks, slow down")
				return nil, nil
			}

			return f(ctx, w, r, request)
		}
	}
}

func takeToken(ctx context.Context, client redis.Scripter, key string, limit config.RateLimit, now time.Time) (bucketResult, error) {
	vals, err := tokenBucketScript.Run(ctx, client, []string{key},
		now.UnixMilli(),
		limit.Capacity,
		limit.RefillTokens,
		limit.RefillInterval.Milliseconds(),
		int64(limit.TTL/time.Second),
	).Int64Slice()
	if err != nil {
		return bucketResult{}, err
	}
	if len(vals) != 3 {
		return bucketResult{}, fmt.Errorf("unexpected rate limit script result %v", vals)
	}

	return bucketResult{
		allowed:    vals[0] == 1,
		remaining:  vals[1],
		retryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// clientIP is the address requests are counted against. X-Forwarded-For is
// only read when the direct peer is a trusted proxy, and then from the right,
// so a client cannot choose its own bucket by sending the header.
func (a *API) clientIP(r *http.Request) string {
	remote := remoteHost(r.RemoteAddr)

	peer, err := netip.ParseAddr(remote)
	if err != nil || !a.isTrustedProxy(peer) {
		return remote
	}

	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !a.isTrustedProxy(hop) {
			return hop.Unmap().String()
		}
	}
	return remote
}

func (a *API) isTrustedProxy(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, prefix := range a.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
