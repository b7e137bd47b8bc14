// Package ratelimit tracks per-user cooldowns and per-guild daily quotas for
// the info command. All state lives in process memory and resets on restart.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

const dayFormat = "2006-01-02"

// Result is the outcome of reserving a request slot.
type Result struct {
	Allowed          bool
	RemainingSeconds int  // seconds left on the cooldown, when that is what rejected the request
	QuotaExceeded    bool // true when the daily limit rejected the request
	UsedToday        int
}

// Limiter holds the last-use timestamp per user and the request counters per
// guild, UTC day and user. Goroutines handle interactions concurrently, so
// the check-and-record pair runs under one lock; a bare check followed by a
// record would let two simultaneous requests both pass.
type Limiter struct {
	mu       sync.Mutex
	lastUsed map[string]time.Time
	daily    map[string]map[string]map[string]int

	now func() time.Time
}

func New() *Limiter {
	return &Limiter{
		lastUsed: make(map[string]time.Time),
		daily:    make(map[string]map[string]map[string]int),
		now:      time.Now,
	}
}

// Reserve checks the cooldown and the daily quota and, if both pass, records
// the request atomically.
func (l *Limiter) Reserve(guildID, userID string, cooldown time.Duration, dailyLimit int) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	if allowed, remaining := l.checkCooldownLocked(userID, cooldown); !allowed {
		return Result{RemainingSeconds: remaining, UsedToday: l.dailyCountLocked(guildID, userID)}
	}

	used := l.dailyCountLocked(guildID, userID)
	if used >= dailyLimit {
		return Result{QuotaExceeded: true, UsedToday: used}
	}

	l.lastUsed[userID] = l.now()
	l.recordRequestLocked(guildID, userID)
	return Result{Allowed: true, UsedToday: used + 1}
}

// CheckCooldown reports whether the user is off cooldown and, if not, the
// seconds left to wait. It does not mutate state.
func (l *Limiter) CheckCooldown(userID string, cooldown time.Duration) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkCooldownLocked(userID, cooldown)
}

func (l *Limiter) checkCooldownLocked(userID string, cooldown time.Duration) (bool, int) {
	last, ok := l.lastUsed[userID]
	if !ok {
		return true, 0
	}
	elapsed := l.now().Sub(last)
	if elapsed >= cooldown {
		return true, 0
	}
	return false, int(math.Ceil((cooldown - elapsed).Seconds()))
}

// RecordUsage stamps the user's last-use time. Call it at most once per
// accepted request, right after the cooldown check passes.
func (l *Limiter) RecordUsage(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastUsed[userID] = l.now()
}

// DailyCount returns the number of requests recorded for the user in the
// guild during the current UTC day.
func (l *Limiter) DailyCount(guildID, userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dailyCountLocked(guildID, userID)
}

func (l *Limiter) dailyCountLocked(guildID, userID string) int {
	return l.daily[guildID][l.dayKey()][userID]
}

// RecordRequest increments today's counter for the user in the guild.
func (l *Limiter) RecordRequest(guildID, userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recordRequestLocked(guildID, userID)
}

func (l *Limiter) recordRequestLocked(guildID, userID string) {
	day := l.dayKey()
	if l.daily[guildID] == nil {
		l.daily[guildID] = make(map[string]map[string]int)
	}
	if l.daily[guildID][day] == nil {
		l.daily[guildID][day] = make(map[string]int)
	}
	l.daily[guildID][day][userID]++
}

// Cleanup drops cooldown stamps older than an hour and counters for past
// days. Run it from a ticker; the maps would otherwise grow forever.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id, t := range l.lastUsed {
		if l.now().Sub(t) > 1*time.Hour {
			delete(l.lastUsed, id)
		}
	}
	today := l.dayKey()
	for guildID, days := range l.daily {
		for day := range days {
			if day != today {
				delete(days, day)
			}
		}
		if len(days) == 0 {
			delete(l.daily, guildID)
		}
	}
}

func (l *Limiter) dayKey() string {
	return l.now().UTC().Format(dayFormat)
}
