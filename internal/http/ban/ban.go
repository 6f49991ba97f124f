package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DailyBanLogKey = "ratelimit:banlog:daily"
	strikesPrefix  = "ratelimit:strikes:"
	bannedPrefix   = "ratelimit:banned:"
)

type Config struct {
	MaxStrikes   int
	StrikeWindow time.Duration
	Duration     time.Duration
}

// Service counts rate limit strikes per target in redis and bans a target
// for Config.Duration once it collects MaxStrikes within StrikeWindow.
type Service struct {
	rdb *redis.Client
	cfg Config
	now func() time.Time
}

func NewService(rdb *redis.Client, cfg Config) *Service {
	return &Service{rdb: rdb, cfg: cfg, now: time.Now}
}

func (s *Service) IsBanned(ctx context.Context, target string) (bool, error) {
	n, err := s.rdb.Exists(ctx, bannedPrefix+target).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RecordStrike adds a strike and reports whether it triggered a ban.
func (s *Service) RecordStrike(ctx context.Context, target, route string) (bool, error) {
	key := strikesPrefix + target
	strikes, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if strikes == 1 {
		if err := s.rdb.Expire(ctx, key, s.cfg.StrikeWindow).Err(); err != nil {
			return false, err
		}
	}
	if strikes < int64(s.cfg.MaxStrikes) {
		return false, nil
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, bannedPrefix+target, route, s.cfg.Duration)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	zap.L().Warn("client banned",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int64("strikes", strikes),
		zap.Duration("duration", s.cfg.Duration),
	)
	s.logBanEvent(ctx, target, route, int(strikes))
	return true, nil
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func (s *Service) logBanEvent(ctx context.Context, target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    s.now(),
	}
	data, _ := json.Marshal(entry)
	if err := s.rdb.RPush(ctx, DailyBanLogKey, data).Err(); err != nil {
		zap.L().Error("failed to append ban log", zap.Error(err))
	}
}

type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Summary struct {
	Total    int           `json:"total"`
	ByRoute  []Count       `json:"by_route"`
	ByTarget []Count       `json:"by_target"`
	Entries  []BanLogEntry `json:"entries"`
}

// Summarize aggregates ban log entries. Counts are sorted by count, then key.
func Summarize(entries []BanLogEntry) Summary {
	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	for _, e := range entries {
		routeCounts[e.Route]++
		targetCounts[e.Target]++
	}
	return Summary{
		Total:    len(entries),
		ByRoute:  sortedCounts(routeCounts),
		ByTarget: sortedCounts(targetCounts),
		Entries:  entries,
	}
}

func sortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for k, v := range m {
		counts = append(counts, Count{Key: k, Count: v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}

// DrainDailyLog reads and clears the ban log. Unparseable entries are skipped.
func (s *Service) DrainDailyLog(ctx context.Context) (Summary, error) {
	pipe := s.rdb.TxPipeline()
	lrange := pipe.LRange(ctx, DailyBanLogKey, 0, -1)
	pipe.Del(ctx, DailyBanLogKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return Summary{}, fmt.Errorf("read ban log: %w", err)
	}

	var entries []BanLogEntry
	for _, item := range lrange.Val() {
		var entry BanLogEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return Summarize(entries), nil
}

// nextRun returns the next 23:59 local time strictly after now.
func nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// StartDailySummary logs a ban summary every day at 23:59 until ctx is done.
func (s *Service) StartDailySummary(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(nextRun(s.now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		summary, err := s.DrainDailyLog(ctx)
		if err != nil {
			zap.L().Error("daily ban summary failed", zap.Error(err))
			continue
		}
		if summary.Total == 0 {
			continue
		}
		zap.L().Info("daily ban summary",
			zap.Int("total", summary.Total),
			zap.Any("by_route", summary.ByRoute),
			zap.Any("by_target", summary.ByTarget),
		)
	}
}
