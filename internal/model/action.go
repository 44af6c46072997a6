package model

// ActionType identifies one operation of the engine's command surface
type ActionType string

const (
	ActionRollDice        ActionType = "roll_dice"
	ActionBuyProperty     ActionType = "buy_property"
	ActionSkipProperty    ActionType = "skip_property"
	ActionMortgage        ActionType = "mortgage"
	ActionUnmortgage      ActionType = "unmortgage"
	ActionBuildHouse      ActionType = "build_house"
	ActionSellHouse       ActionType = "sell_house"
	ActionProposeTrade    ActionType = "propose_trade"
	ActionAcceptTrade     ActionType = "accept_trade"
	ActionRejectTrade     ActionType = "reject_trade"
	ActionPayBail         ActionType = "pay_bail"
	ActionUseJailFreeCard ActionType = "use_jail_free_card"
	ActionStayInJail      ActionType = "stay_in_jail"
	ActionDeclareBankrupt ActionType = "declare_bankrupt"
	ActionEndTurn         ActionType = "end_turn"
	ActionAcknowledgeCard ActionType = "acknowledge_card"
)

// Action is one suggested operation in an automated player's decision
// payload. Cell is used by the per-cell operations; Trade by propose_trade.
type Action struct {
	Type  ActionType  `json:"type"`
	Cell  int         `json:"cell,omitempty"`
	Trade *TradeOffer `json:"trade,omitempty"`
}

// DiceRoll carries collaborator-supplied dice values, accepted verbatim
type DiceRoll struct {
	D1 int `json:"d1"`
	D2 int `json:"d2"`
}

// Decision is the automated-player collaborator's output for one turn:
// pre-roll intents, at most one roll, then post-roll intents, executed
// strictly in order
type Decision struct {
	PreRollActions  []Action  `json:"pre_roll_actions"`
	Roll            *DiceRoll `json:"roll"`
	PostRollActions []Action  `json:"post_roll_actions"`
}
