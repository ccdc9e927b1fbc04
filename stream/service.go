package stream

import (
	"fmt"
	"log"
	"sync"

	"globitex-client/constants"
	"globitex-client/structs/tickerlog"

	ws "github.com/gorilla/websocket"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	Name = "≪stream-service≫"

	// DefaultURL is the production Globitex market-data feed.
	DefaultURL = "wss://stream.globitex.com/market-data"
)

var logger *log.Logger

func init() {
	logger = log.New(log.Writer(), fmt.Sprintf(constants.LogPrefixFmt, Name), log.Ldate|log.Ltime|log.Lmsgprefix)
}

//
// Handler is a callback that receives every ticker update the service decodes for its
// subscribed symbols.
//
type Handler func(tickerlog.Tick)

//
// Service maintains a live connection to the Globitex market-data WebSocket feed. It subscribes
// to ticker updates for a configured set of symbols, retains a bounded per-symbol history of
// them, and fans each update out to any registered handlers.
//
// Consistent with the REST client, the service performs no reconnection on failure – a feed
// error terminates the service loop and is logged, and it is up to the owner to start a fresh
// service if it wants one.
//
type Service struct {
	mu        *sync.Mutex
	chKill    chan bool
	chStopped chan bool

	url     string
	symbols []string

	state state
	conn  *ws.Conn

	historySize int
	history     map[string]*tickerlog.Log
	handlers    []Handler
}

//
// NewService instantiates a stream service that will subscribe to ticker updates for the
// specified symbols and retain up to historySize of them per symbol.
//
func NewService(url string, symbols []string, historySize int) *Service {
	return &Service{
		mu: &sync.Mutex{},

		url:     url,
		symbols: symbols,

		state: disconnected,

		historySize: historySize,
		history:     make(map[string]*tickerlog.Log),
		handlers:    make([]Handler, 0),
	}
}

//
// RegisterTickHandler registers a handler to be executed for every decoded ticker update.
// Handlers run on the service's goroutine and so should return quickly.
//
func (o *Service) RegisterTickHandler(handler Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.handlers = append(o.handlers, handler)
}

//
// Latest returns the most recent ticker update observed for the specified symbol.
//
func (o *Service) Latest(symbol string) (tickerlog.Tick, bool) {
	o.mu.Lock()
	history, ok := o.history[symbol]
	o.mu.Unlock()

	if !ok {
		return tickerlog.Tick{}, false
	}

	return history.Latest()
}

//
// Recent returns the retained ticker updates for the specified symbol, oldest first.
//
func (o *Service) Recent(symbol string) []tickerlog.Tick {
	o.mu.Lock()
	history, ok := o.history[symbol]
	o.mu.Unlock()

	if !ok {
		return nil
	}

	return history.Recent()
}

//
// Start connects to the feed, subscribes to the configured symbols, and fires off a goroutine as
// the executor for the service. A channel that can be blocked on for a "true" value – which
// indicates that start up is complete – is returned.
//
func (o *Service) Start() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	//
	// (Re)initialize our instance variables.
	//
	o.chKill = make(chan bool, 1)
	o.chStopped = make(chan bool, 1)

	//
	// Connect to the feed and subscribe to ticker updates for our symbols.
	//
	var err error
	var dialer ws.Dialer

	o.state = connecting

	o.conn, _, err = dialer.Dial(o.url, nil)
	if err != nil {
		o.state = disconnected

		return nil, errors.Wrapf(err, "could not connect to the market-data feed at %s", o.url)
	}

	o.state = connected

	subscribe := subscribeMessage{
		Op:      "subscribe",
		Symbols: o.symbols,
	}

	if err := o.conn.WriteJSON(subscribe); err != nil {
		_ = o.conn.Close()

		o.state = disconnected

		return nil, errors.Wrap(err, "could not subscribe to ticker updates from the market-data feed")
	}

	o.state = subscribed

	//
	// Fire off a goroutine as the executor for the service.
	//
	go o.service()

	//
	// Return our "started" channel in case the caller wants to block on it and log some debug
	// info.
	//
	chStarted := make(chan bool, 1)

	chStarted <- true

	logger.Printf("Started. (Symbols: %v)", o.symbols)

	return chStarted, nil
}

//
// Stop tells the service to shut down. A channel that can be blocked on for a "true" value –
// which indicates that shut down is complete – is returned.
//
func (o *Service) Stop() (<-chan bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	logger.Printf("Stopping...")

	o.chKill <- true

	return o.chStopped, nil
}

//
// service monitors the feed for ticker update frames until it is killed or the feed fails.
//
func (o *Service) service() {
	cont := true

	for cont {
		chFrame := make(chan *tickerFrame, 1)
		chErr := make(chan error, 1)

		go o.readNextFrame(chFrame, chErr)

		select {
		case <-o.chKill:
			cont = false

		case frame := <-chFrame:
			if frame != nil {
				o.handleFrame(frame)
			}

		case err := <-chErr:
			logger.Printf("The market-data feed failed. Shutting down. (Error: %s)", err)

			cont = false
		}
	}

	//
	// Tear the connection down and send the signal that we have shut down.
	//
	_ = o.conn.Close()

	o.mu.Lock()
	o.state = disconnected
	o.mu.Unlock()

	o.chStopped <- true
}

//
// readNextFrame reads and decodes a single frame from the feed, producing it (or the read
// failure) on the appropriate channel.
//
func (o *Service) readNextFrame(chFrame chan *tickerFrame, chErr chan error) {
	_, data, err := o.conn.ReadMessage()
	if err != nil {
		chErr <- err

		return
	}

	frame, err := decodeFrame(data)
	if err != nil {
		// The feed interleaves frame kinds we do not model. Skip anything unrecognizable.
		chFrame <- nil

		return
	}

	chFrame <- frame
}

//
// handleFrame folds a decoded ticker update into the per-symbol history and fans it out to every
// registered handler.
//
func (o *Service) handleFrame(frame *tickerFrame) {
	tick := frame.tick()

	o.mu.Lock()

	history, ok := o.history[tick.Symbol]

	if !ok {
		history = tickerlog.New(o.historySize)

		o.history[tick.Symbol] = history
	}

	previous, hadPrevious := history.Latest()

	history.Add(tick)

	handlers := make([]Handler, len(o.handlers))

	copy(handlers, o.handlers)

	o.mu.Unlock()

	//
	// Log the movement since the previous update, colored by direction.
	//
	last := fmt.Sprintf("%s %s", tick.Symbol, tick.Last)

	if !hadPrevious || tick.Last.Equal(previous.Last) {
		logger.Printf("Tick: %s", aurora.Bold(aurora.Yellow(last)))
	} else if tick.Last.GreaterThan(previous.Last) {
		logger.Printf("Tick: %s", aurora.Bold(aurora.Green(last)))
	} else {
		logger.Printf("Tick: %s", aurora.Bold(aurora.Red(last)))
	}

	for _, handler := range handlers {
		handler(tick)
	}
}
