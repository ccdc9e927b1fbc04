package stream

type state int

const (
	disconnected state = iota // The stream service has not yet attempted to establish a connection to the market-data feed.
	connecting                // The stream service is attempting to establish a connection to the market-data feed.
	connected                 // The stream service has connected to the market-data feed.
	subscribed                // The stream service has successfully subscribed to ticker updates for its configured symbols.
)
