package model

// EventType identifies the type of event
type EventType string

const (
	EventRolled       EventType = "rolled"
	EventPassedStart  EventType = "passed_start"
	EventLanded       EventType = "landed"
	EventBought       EventType = "bought"
	EventRentPaid     EventType = "rent_paid"
	EventTaxPaid      EventType = "tax_paid"
	EventCardDrawn    EventType = "card_drawn"
	EventBuilt        EventType = "built"
	EventSold         EventType = "sold"
	EventMortgaged    EventType = "mortgaged"
	EventUnmortgaged  EventType = "unmortgaged"
	EventTradeOffered EventType = "trade_offered"
	EventTradeClosed  EventType = "trade_closed"
	EventJailed       EventType = "jailed"
	EventJailLeft     EventType = "jail_left"
	EventEliminated   EventType = "eliminated"
	EventTurnEnded    EventType = "turn_ended"
	EventGameWon      EventType = "game_won"
)

// Event is a notable occurrence reported to the narrative log sink.
// Events are advisory only and never influence engine state.
type Event struct {
	Type     EventType
	GameID   GameID
	PlayerID PlayerID
	Cell     int // -1 when not cell-related
	Amount   int
	Message  string
}
