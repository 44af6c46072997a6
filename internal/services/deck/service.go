package deck

import "github.com/atherden/boardwalk/internal/model"

// Service holds the fixed-order card decks and their draw mechanics.
// Decks are never shuffled and never reshuffled: the draw cursor lives in
// the game state and wraps around the list, so draws are deterministic
// and reproducible across save/restore.
type Service struct {
	chance []model.Card
	chest  []model.Card
}

// New creates a deck service with the standard card lists
func New() *Service {
	return &Service{
		chance: ChanceCards(),
		chest:  CommunityChestCards(),
	}
}

// Cards returns the full fixed-order list for a deck
func (s *Service) Cards(kind model.DeckKind) []model.Card {
	if kind == model.DeckCommunityChest {
		return s.chest
	}
	return s.chance
}

// Draw returns the card under the deck's cursor and advances the cursor
func (s *Service) Draw(game *model.Game, kind model.DeckKind) model.Card {
	cards := s.Cards(kind)
	var cursor *model.DeckCursor
	if kind == model.DeckCommunityChest {
		cursor = &game.ChestCursor
	} else {
		cursor = &game.ChanceCursor
	}
	card := cards[int(*cursor)%len(cards)]
	*cursor++
	return card
}

// ChanceCards returns the chance deck in its fixed order
func ChanceCards() []model.Card {
	return []model.Card{
		{Text: "Advance to Go", Effect: model.EffectGoto, Position: 0},
		{Text: "Advance to Illinois Avenue", Effect: model.EffectGoto, Position: 24},
		{Text: "Advance to St. Charles Place", Effect: model.EffectGoto, Position: 11},
		{Text: "Take a trip to Reading Railroad", Effect: model.EffectGoto, Position: 5},
		{Text: "Bank pays you dividend of $50", Effect: model.EffectMoney, Amount: 50},
		{Text: "Get Out of Jail Free", Effect: model.EffectJailFree},
		{Text: "Go back 3 spaces", Effect: model.EffectMove, Steps: -3},
		{Text: "Go to Jail. Go directly to Jail", Effect: model.EffectJail},
		{Text: "Make general repairs on all your property: $25 per house", Effect: model.EffectPayPerHouse, Amount: 25},
		{Text: "Pay poor tax of $15", Effect: model.EffectMoney, Amount: -15},
		{Text: "Take a walk on the Boardwalk", Effect: model.EffectGoto, Position: 39},
		{Text: "You have been elected Chairman of the Board: pay each player $50", Effect: model.EffectPayAll, Amount: 50},
		{Text: "Your building loan matures: collect $150", Effect: model.EffectMoney, Amount: 150},
		{Text: "You have won a crossword competition: collect $100", Effect: model.EffectMoney, Amount: 100},
	}
}

// CommunityChestCards returns the community chest deck in its fixed order
func CommunityChestCards() []model.Card {
	return []model.Card{
		{Text: "Bank error in your favor: collect $200", Effect: model.EffectMoney, Amount: 200},
		{Text: "Doctor's fees: pay $50", Effect: model.EffectMoney, Amount: -50},
		{Text: "From sale of stock you get $50", Effect: model.EffectMoney, Amount: 50},
		{Text: "Get Out of Jail Free", Effect: model.EffectJailFree},
		{Text: "Go to Jail. Go directly to Jail", Effect: model.EffectJail},
		{Text: "Grand Opera Night: collect $50 from every player", Effect: model.EffectCollectFromAll, Amount: 50},
		{Text: "Holiday fund matures: receive $100", Effect: model.EffectMoney, Amount: 100},
		{Text: "Income tax refund: collect $20", Effect: model.EffectMoney, Amount: 20},
		{Text: "It is your birthday: collect $10 from every player", Effect: model.EffectCollectFromAll, Amount: 10},
		{Text: "Life insurance matures: collect $100", Effect: model.EffectMoney, Amount: 100},
		{Text: "Pay hospital fees of $100", Effect: model.EffectMoney, Amount: -100},
		{Text: "Pay school fees of $150", Effect: model.EffectMoney, Amount: -150},
		{Text: "Receive $25 consultancy fee", Effect: model.EffectMoney, Amount: 25},
		{Text: "You are assessed for street repairs: $40 per house", Effect: model.EffectPayPerHouse, Amount: 40},
		{Text: "You have won second prize in a beauty contest: collect $10", Effect: model.EffectMoney, Amount: 10},
		{Text: "You inherit $100", Effect: model.EffectMoney, Amount: 100},
	}
}
