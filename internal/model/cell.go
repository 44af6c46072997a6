package model

// BoardSize is the number of cells on the board
const BoardSize = 40

// HotelCount is the house-count sentinel representing a hotel
const HotelCount = 5

// ColorGroup identifies the set of streets that must all be owned by one
// player before houses may be built on any of them
type ColorGroup string

// CellType tags the variant carried by a Cell
type CellType string

const (
	CellStreet         CellType = "street"
	CellRailroad       CellType = "railroad"
	CellUtility        CellType = "utility"
	CellTax            CellType = "tax"
	CellChance         CellType = "chance"
	CellCommunityChest CellType = "community_chest"
	CellGo             CellType = "go"
	CellGoToJail       CellType = "go_to_jail"
	CellJail           CellType = "jail"
	CellFreeParking    CellType = "free_parking"
)

// Street carries the data for a buildable street cell
type Street struct {
	Group         ColorGroup `json:"group"`
	Price         int        `json:"price"`
	Rent          [6]int     `json:"rent"` // 0-4 houses, then hotel
	HouseCost     int        `json:"house_cost"`
	MortgageValue int        `json:"mortgage_value"`
}

// Railroad carries the data for a railroad cell
type Railroad struct {
	Price         int    `json:"price"`
	Rent          [4]int `json:"rent"` // by count of unmortgaged railroads owned
	MortgageValue int    `json:"mortgage_value"`
}

// Utility carries the data for a utility cell
type Utility struct {
	Price         int `json:"price"`
	OneOwned      int `json:"one_owned"` // dice multiplier with one utility held
	TwoOwned      int `json:"two_owned"` // dice multiplier with both held
	MortgageValue int `json:"mortgage_value"`
}

// Tax carries the data for a flat-tax cell
type Tax struct {
	Amount int `json:"amount"`
}

// Cell is one square of the board. Exactly the payload matching Type is
// non-nil; the board is immutable for the game's lifetime.
type Cell struct {
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	Type     CellType  `json:"type"`
	Street   *Street   `json:"street,omitempty"`
	Railroad *Railroad `json:"railroad,omitempty"`
	Utility  *Utility  `json:"utility,omitempty"`
	Tax      *Tax      `json:"tax,omitempty"`
}

// Ownable returns true for cell types that players can purchase
func (c *Cell) Ownable() bool {
	switch c.Type {
	case CellStreet, CellRailroad, CellUtility:
		return true
	}
	return false
}

// Price returns the purchase price for ownable cells, 0 otherwise
func (c *Cell) Price() int {
	switch c.Type {
	case CellStreet:
		return c.Street.Price
	case CellRailroad:
		return c.Railroad.Price
	case CellUtility:
		return c.Utility.Price
	}
	return 0
}

// MortgageValue returns the mortgage value for ownable cells, 0 otherwise
func (c *Cell) MortgageValue() int {
	switch c.Type {
	case CellStreet:
		return c.Street.MortgageValue
	case CellRailroad:
		return c.Railroad.MortgageValue
	case CellUtility:
		return c.Utility.MortgageValue
	}
	return 0
}
