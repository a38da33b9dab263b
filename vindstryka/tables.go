package vindstryka

import "strconv"

// Panel geometry.
const (
	NumCells  = 27 // Controller cells wired to the glass
	NumDigits = 9
)

// Segment bits owned by a digit in each cell of its pair. Everything outside
// these masks belongs to icons.
const (
	firstCellMask  byte = 0x07 // E, F, G
	secondCellMask byte = 0x0F // A, B, C, D
)

// digitSegments maps a hex value to its glyph. The upper byte goes to the
// first cell of a digit (EFG), the lower byte to the second cell (ABCD).
var digitSegments = [16]uint16{
	0x050F, // 0
	0x0006, // 1
	0x030D, // 2
	0x020F, // 3
	0x0606, // 4
	0x060B, // 5
	0x070B, // 6
	0x000E, // 7
	0x070F, // 8
	0x060F, // 9
	0x070E, // A
	0x0703, // b
	0x0509, // C
	0x0307, // d
	0x0709, // E
	0x0708, // F
}

// digitCells holds the first cell of each digit; the second is the next one.
// The gaps (8, 15) are icon-only cells.
var digitCells = [NumDigits]uint8{2, 4, 6, 9, 11, 13, 16, 18, 20}

// Icon is a fixed symbol on the panel driven by a single segment bit.
type Icon uint8

const (
	Room Icon = iota
	Window
	House
	Trees
	Wrench
	AddPurifier
	Purifier
	Linked
	TopLeftUnderline
	TopUnderline
	PM25
	TrafficRed
	TrafficRedYellow
	TrafficYellow
	TrafficYellowGreen
	TrafficGreen
	Brightness
	BrightnessLevel1
	BrightnessLevel2
	BrightnessLevel3
	AutoOff
	Thermometer
	Fahrenheit
	FahrenheitArrow
	Celsius
	CelsiusArrow
	Droplet
	Percentage
	TVOC
	Flower
	ArrowUp
	ArrowDown
	ArrowRight
	ListArrow1
	ListArrow2
	ListArrow3
	List

	numIcons
)

type iconAddr struct {
	cell uint8
	mask byte
	name string
}

var iconAddrs = [numIcons]iconAddr{
	Room:               {2, 0x08, "Room"},
	Window:             {6, 0x08, "Window"},
	House:              {26, 0x08, "House"},
	Trees:              {26, 0x04, "Trees"},
	Wrench:             {26, 0x02, "Wrench"},
	AddPurifier:        {26, 0x01, "AddPurifier"},
	Purifier:           {25, 0x02, "Purifier"},
	Linked:             {25, 0x01, "Linked"},
	TopLeftUnderline:   {4, 0x08, "TopLeftUnderline"},
	TopUnderline:       {25, 0x08, "TopUnderline"},
	PM25:               {25, 0x04, "PM25"},
	TrafficRed:         {24, 0x01, "TrafficRed"},
	TrafficRedYellow:   {24, 0x02, "TrafficRedYellow"},
	TrafficYellow:      {24, 0x04, "TrafficYellow"},
	TrafficYellowGreen: {24, 0x08, "TrafficYellowGreen"},
	TrafficGreen:       {15, 0x08, "TrafficGreen"},
	Brightness:         {8, 0x01, "Brightness"},
	BrightnessLevel1:   {8, 0x02, "BrightnessLevel1"},
	BrightnessLevel2:   {8, 0x04, "BrightnessLevel2"},
	BrightnessLevel3:   {8, 0x08, "BrightnessLevel3"},
	AutoOff:            {11, 0x08, "AutoOff"},
	Thermometer:        {9, 0x08, "Thermometer"},
	Fahrenheit:         {13, 0x08, "Fahrenheit"},
	FahrenheitArrow:    {15, 0x04, "FahrenheitArrow"},
	Celsius:            {15, 0x01, "Celsius"},
	CelsiusArrow:       {15, 0x02, "CelsiusArrow"},
	Droplet:            {16, 0x08, "Droplet"},
	Percentage:         {23, 0x08, "Percentage"},
	TVOC:               {20, 0x08, "TVOC"},
	Flower:             {18, 0x08, "Flower"},
	ArrowUp:            {22, 0x04, "ArrowUp"},
	ArrowDown:          {22, 0x02, "ArrowDown"},
	ArrowRight:         {22, 0x01, "ArrowRight"},
	ListArrow1:         {23, 0x01, "ListArrow1"},
	ListArrow2:         {23, 0x02, "ListArrow2"},
	ListArrow3:         {22, 0x08, "ListArrow3"},
	List:               {23, 0x04, "List"},
}

// Valid reports whether i is one of the icons defined by this package.
func (i Icon) Valid() bool {
	return i < numIcons
}

func (i Icon) String() string {
	if !i.Valid() {
		return "Icon(" + strconv.Itoa(int(i)) + ")"
	}
	return iconAddrs[i].name
}

// Icons returns every icon on the panel, in declaration order.
func Icons() []Icon {
	icons := make([]Icon, numIcons)
	for i := range icons {
		icons[i] = Icon(i)
	}
	return icons
}
