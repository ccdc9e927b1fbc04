package tickerlog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func tick(last int64) Tick {
	return Tick{
		Symbol: "BTCEUR",
		Last:   decimal.NewFromInt(last),
		At:     time.Now(),
	}
}

func TestAddEvictsOldestAtCapacity(t *testing.T) {
	log := New(3)

	for i := int64(1); i <= 5; i++ {
		log.Add(tick(i))
	}

	if log.Len() != 3 {
		t.Fatalf("Expected the log to retain 3 ticks but it retained %d.", log.Len())
	}

	recent := log.Recent()

	if !recent[0].Last.Equal(decimal.NewFromInt(3)) {
		t.Errorf("Expected the oldest retained tick to be 3 but it was %s.", recent[0].Last)
	}

	if !recent[2].Last.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected the newest retained tick to be 5 but it was %s.", recent[2].Last)
	}
}

func TestLatest(t *testing.T) {
	log := New(2)

	if _, ok := log.Latest(); ok {
		t.Error("Expected an empty log to report no latest tick.")
	}

	log.Add(tick(1))
	log.Add(tick(2))

	latest, ok := log.Latest()

	if !ok {
		t.Fatal("Expected a populated log to report a latest tick.")
	}

	if !latest.Last.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Expected the latest tick to be 2 but it was %s.", latest.Last)
	}
}

func TestRecentReturnsACopy(t *testing.T) {
	log := New(2)

	log.Add(tick(1))

	recent := log.Recent()

	recent[0].Last = decimal.NewFromInt(99)

	latest, _ := log.Latest()

	if !latest.Last.Equal(decimal.NewFromInt(1)) {
		t.Error("Expected mutating the returned slice to leave the log itself untouched.")
	}
}
