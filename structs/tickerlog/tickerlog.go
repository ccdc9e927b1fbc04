package tickerlog

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

//
// Tick is a single observed ticker update for one symbol.
//
type Tick struct {
	Symbol string
	Ask    decimal.Decimal
	Bid    decimal.Decimal
	Last   decimal.Decimal
	At     time.Time
}

//
// Log is a thread-safe, bounded log of ticker updates that automatically maintains its maximum
// size by evicting its oldest tick whenever a new one is added at capacity. It is modeled after
// the EvictingQueue class from the Google Guava library for Java.
//
type Log struct {
	mu    *sync.Mutex
	size  int
	ticks []Tick
}

//
// New instantiates a new ticker log with the specified maximum size.
//
func New(maxSize int) *Log {
	return &Log{
		mu:    &sync.Mutex{},
		size:  maxSize,
		ticks: make([]Tick, 0, maxSize),
	}
}

//
// Add appends the provided tick to the log and evicts the oldest tick if necessary to maintain
// the maximum size.
//
func (o *Log) Add(tick Tick) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.ticks) == o.size {
		o.ticks = o.ticks[1:]
	}

	o.ticks = append(o.ticks, tick)
}

//
// Latest returns the most recently added tick and a true sentinel, or a zero tick and a false
// sentinel if the log is empty.
//
func (o *Log) Latest() (Tick, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.ticks) == 0 {
		return Tick{}, false
	}

	return o.ticks[len(o.ticks)-1], true
}

//
// Recent returns a copy of the retained ticks, ordered from oldest to newest.
//
func (o *Log) Recent() []Tick {
	o.mu.Lock()
	defer o.mu.Unlock()

	ret := make([]Tick, len(o.ticks))

	copy(ret, o.ticks)

	return ret
}

//
// Len returns the number of ticks currently retained by the log.
//
func (o *Log) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.ticks)
}
