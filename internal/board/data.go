package board

import "github.com/atherden/boardwalk/internal/model"

// Color groups of the standard US board
const (
	GroupBrown     model.ColorGroup = "brown"
	GroupLightBlue model.ColorGroup = "lightblue"
	GroupPink      model.ColorGroup = "pink"
	GroupOrange    model.ColorGroup = "orange"
	GroupRed       model.ColorGroup = "red"
	GroupYellow    model.ColorGroup = "yellow"
	GroupGreen     model.ColorGroup = "green"
	GroupDarkBlue  model.ColorGroup = "darkblue"
)

func street(index int, name string, group model.ColorGroup, price, houseCost, mortgage int, rent [6]int) model.Cell {
	return model.Cell{
		Index: index, Name: name, Type: model.CellStreet,
		Street: &model.Street{Group: group, Price: price, Rent: rent, HouseCost: houseCost, MortgageValue: mortgage},
	}
}

func railroad(index int, name string) model.Cell {
	return model.Cell{
		Index: index, Name: name, Type: model.CellRailroad,
		Railroad: &model.Railroad{Price: 200, Rent: [4]int{25, 50, 100, 200}, MortgageValue: 100},
	}
}

func utility(index int, name string) model.Cell {
	return model.Cell{
		Index: index, Name: name, Type: model.CellUtility,
		Utility: &model.Utility{Price: 150, OneOwned: 4, TwoOwned: 10, MortgageValue: 75},
	}
}

func tax(index int, name string, amount int) model.Cell {
	return model.Cell{Index: index, Name: name, Type: model.CellTax, Tax: &model.Tax{Amount: amount}}
}

func plain(index int, name string, t model.CellType) model.Cell {
	return model.Cell{Index: index, Name: name, Type: t}
}

// StandardCells returns the 40 cells of the standard US board
func StandardCells() []model.Cell {
	return []model.Cell{
		plain(0, "Go", model.CellGo),
		street(1, "Mediterranean Avenue", GroupBrown, 60, 50, 30, [6]int{2, 10, 30, 90, 160, 250}),
		plain(2, "Community Chest", model.CellCommunityChest),
		street(3, "Baltic Avenue", GroupBrown, 60, 50, 30, [6]int{4, 20, 60, 180, 320, 450}),
		tax(4, "Income Tax", 200),
		railroad(5, "Reading Railroad"),
		street(6, "Oriental Avenue", GroupLightBlue, 100, 50, 50, [6]int{6, 30, 90, 270, 400, 550}),
		plain(7, "Chance", model.CellChance),
		street(8, "Vermont Avenue", GroupLightBlue, 100, 50, 50, [6]int{6, 30, 90, 270, 400, 550}),
		street(9, "Connecticut Avenue", GroupLightBlue, 120, 50, 60, [6]int{8, 40, 100, 300, 450, 600}),
		plain(10, "Jail / Just Visiting", model.CellJail),
		street(11, "St. Charles Place", GroupPink, 140, 100, 70, [6]int{10, 50, 150, 450, 625, 750}),
		utility(12, "Electric Company"),
		street(13, "States Avenue", GroupPink, 140, 100, 70, [6]int{10, 50, 150, 450, 625, 750}),
		street(14, "Virginia Avenue", GroupPink, 160, 100, 80, [6]int{12, 60, 180, 500, 700, 900}),
		railroad(15, "Pennsylvania Railroad"),
		street(16, "St. James Place", GroupOrange, 180, 100, 90, [6]int{14, 70, 200, 550, 750, 950}),
		plain(17, "Community Chest", model.CellCommunityChest),
		street(18, "Tennessee Avenue", GroupOrange, 180, 100, 90, [6]int{14, 70, 200, 550, 750, 950}),
		street(19, "New York Avenue", GroupOrange, 200, 100, 100, [6]int{16, 80, 220, 600, 800, 1000}),
		plain(20, "Free Parking", model.CellFreeParking),
		street(21, "Kentucky Avenue", GroupRed, 220, 150, 110, [6]int{18, 90, 250, 700, 875, 1050}),
		plain(22, "Chance", model.CellChance),
		street(23, "Indiana Avenue", GroupRed, 220, 150, 110, [6]int{18, 90, 250, 700, 875, 1050}),
		street(24, "Illinois Avenue", GroupRed, 240, 150, 120, [6]int{20, 100, 300, 750, 925, 1100}),
		railroad(25, "B&O Railroad"),
		street(26, "Atlantic Avenue", GroupYellow, 260, 150, 130, [6]int{22, 110, 330, 800, 975, 1150}),
		street(27, "Ventnor Avenue", GroupYellow, 260, 150, 130, [6]int{22, 110, 330, 800, 975, 1150}),
		utility(28, "Water Works"),
		street(29, "Marvin Gardens", GroupYellow, 280, 150, 140, [6]int{24, 120, 360, 850, 1025, 1200}),
		plain(30, "Go to Jail", model.CellGoToJail),
		street(31, "Pacific Avenue", GroupGreen, 300, 200, 150, [6]int{26, 130, 390, 900, 1100, 1275}),
		street(32, "North Carolina Avenue", GroupGreen, 300, 200, 150, [6]int{26, 130, 390, 900, 1100, 1275}),
		plain(33, "Community Chest", model.CellCommunityChest),
		street(34, "Pennsylvania Avenue", GroupGreen, 320, 200, 160, [6]int{28, 150, 450, 1000, 1200, 1400}),
		railroad(35, "Short Line Railroad"),
		plain(36, "Chance", model.CellChance),
		street(37, "Park Place", GroupDarkBlue, 350, 200, 175, [6]int{35, 175, 500, 1100, 1300, 1500}),
		tax(38, "Luxury Tax", 100),
		street(39, "Boardwalk", GroupDarkBlue, 400, 200, 200, [6]int{50, 200, 600, 1400, 1700, 2000}),
	}
}

// Standard builds the validated standard board
func Standard() (*Board, error) {
	return New(StandardCells())
}
