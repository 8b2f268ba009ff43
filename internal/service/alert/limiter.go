package alert

// DefaultMaxPerTrigger caps how many notifications a single key may
// produce before it goes quiet.
const DefaultMaxPerTrigger = 5

// Limiter counts notifications per key for the lifetime of the process.
// It is the sole intra-process dedup authority: counts are never
// persisted, so a restart resets every stream. Entries are never
// deleted either; the key space is bounded by (users x symbols) and the
// process is restarted periodically by the hosting platform.
//
// Not safe for concurrent use. The scan loop is the only caller and it
// evaluates sequentially.
type Limiter struct {
	max    int
	counts map[Key]int
}

func NewLimiter(max int) *Limiter {
	if max <= 0 {
		max = DefaultMaxPerTrigger
	}
	return &Limiter{
		max:    max,
		counts: make(map[Key]int),
	}
}

// ShouldSend reports whether key has remaining sends.
func (l *Limiter) ShouldSend(k Key) bool {
	return l.counts[k] < l.max
}

// RecordSent increments key's counter and returns the new count, which
// doubles as the ordinal of the notification just sent.
func (l *Limiter) RecordSent(k Key) int {
	l.counts[k]++
	return l.counts[k]
}

// AtCap reports whether key has exhausted its sends.
func (l *Limiter) AtCap(k Key) bool {
	return l.counts[k] >= l.max
}

func (l *Limiter) Count(k Key) int {
	return l.counts[k]
}

func (l *Limiter) Max() int {
	return l.max
}
