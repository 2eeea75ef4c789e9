package ban

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alandalus/library-site/internal/redissvc"
)

const (
	strikeLimit = 10
	strikeTTL   = 10 * time.Minute
	banTTL      = time.Hour

	strikePrefix = "ratelimit:strikes:"
	banPrefix    = "ratelimit:ban:"

	// DailyBanLogKey holds the running ban log for the current day.
	DailyBanLogKey = "ratelimit:banlog:daily"
)

var (
	rdb *redis.Client
	ctx context.Context
)

// SetRedisService enables the ban ledger. Without it every check is a
// no-op and only the in-process rate limiter applies.
func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// IsBanned reports whether the address is currently banned.
func IsBanned(ip string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banPrefix+ip).Result()
	return err == nil && n > 0
}

// RecordStrike counts one rejected request. Crossing the strike limit
// within the strike window bans the address for banTTL and appends an
// entry to the daily ban log.
func RecordStrike(ip, route string) {
	if rdb == nil {
		return
	}

	key := strikePrefix + ip
	strikes, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("ban: failed to record strike for %s: %v", ip, err)
		return
	}
	if strikes == 1 {
		rdb.Expire(ctx, key, strikeTTL)
	}
	if strikes < strikeLimit {
		return
	}

	if err := rdb.Set(ctx, banPrefix+ip, "1", banTTL).Err(); err != nil {
		log.Printf("ban: failed to ban %s: %v", ip, err)
		return
	}
	rdb.Del(ctx, key)
	logBanEvent(ip, route, int(strikes))
	log.Printf("🚫 banned %s after %d strikes on %s", ip, strikes, route)
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyBanLogKey, data).Err()
}

// DailySummary drains the day's ban log and returns the parsed
// entries, newest last. Called by the daily summary loop.
func DailySummary() []BanLogEntry {
	if rdb == nil {
		return nil
	}
	raw, err := rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return nil
	}
	_ = rdb.Del(ctx, DailyBanLogKey).Err()

	entries := make([]BanLogEntry, 0, len(raw))
	for _, item := range raw {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// StartDailySummaryLoop logs a compact ban summary once a day.
func StartDailySummaryLoop() {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(time.Until(next))

		entries := DailySummary()
		if len(entries) == 0 {
			continue
		}
		routeCounts := make(map[string]int)
		for _, e := range entries {
			routeCounts[e.Route]++
		}
		log.Printf("📊 daily ban summary: %d bans across %d routes", len(entries), len(routeCounts))
		for route, count := range routeCounts {
			log.Printf("  %s: %d", route, count)
		}
	}
}
