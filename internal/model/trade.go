package model

// TradeStatus is the lifecycle state of a trade offer
type TradeStatus string

const (
	TradeStatusPending  TradeStatus = "pending"
	TradeStatusAccepted TradeStatus = "accepted"
	TradeStatusRejected TradeStatus = "rejected"
)

// TradeOffer is a proposed property/cash exchange between two players.
// Exactly zero or one pending offer exists per game at a time; it is
// created by the active player and resolved by the recipient.
type TradeOffer struct {
	From PlayerID `json:"from"`
	To   PlayerID `json:"to"`

	// Cells moving From -> To; must be owned by From, unmortgaged, no houses
	GiveProperties []int `json:"give_properties"`
	// Cells moving To -> From; symmetric constraints on To
	TakeProperties []int `json:"take_properties"`

	GiveCash int `json:"give_cash"` // cash From pays To
	TakeCash int `json:"take_cash"` // cash To pays From

	Status TradeStatus `json:"status"`
}

// Clone returns an independent copy of the offer
func (t *TradeOffer) Clone() *TradeOffer {
	cp := *t
	cp.GiveProperties = append([]int(nil), t.GiveProperties...)
	cp.TakeProperties = append([]int(nil), t.TakeProperties...)
	return &cp
}
