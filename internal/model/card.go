package model

// DeckKind selects which fixed-order deck a card belongs to
type DeckKind string

const (
	DeckChance         DeckKind = "chance"
	DeckCommunityChest DeckKind = "community_chest"
)

// CardEffect tags the effect variant carried by a Card
type CardEffect string

const (
	EffectMoney          CardEffect = "money"            // credit/debit the drawer
	EffectMove           CardEffect = "move"             // relocate by signed steps, re-resolve landing
	EffectGoto           CardEffect = "goto"             // relocate to an absolute position, no pass-start credit
	EffectJail           CardEffect = "jail"             // send the drawer directly to jail
	EffectJailFree       CardEffect = "jail_free"        // grant a get-out-of-jail card
	EffectCollectFromAll CardEffect = "collect_from_all" // every other live player pays the drawer
	EffectPayAll         CardEffect = "pay_all"          // the drawer pays every other live player
	EffectPayPerHouse    CardEffect = "pay_per_house"    // debit amount per house the drawer owns
)

// Card is one entry of a fixed-order deck. Amount is used by the money,
// collect/pay and per-house effects; Steps by move; Position by goto.
type Card struct {
	Text     string     `json:"text"`
	Effect   CardEffect `json:"effect"`
	Amount   int        `json:"amount,omitempty"`
	Steps    int        `json:"steps,omitempty"`
	Position int        `json:"position,omitempty"`
}

// DrawnCard records a card drawn for a human player awaiting acknowledgement
type DrawnCard struct {
	Deck DeckKind `json:"deck"`
	Card Card     `json:"card"`
}
