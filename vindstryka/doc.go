// Package vindstryka drives the segment LCD of the Vindstryka air quality
// sensor through an HT1621 controller.
//
// The panel uses 27 controller cells. Nine seven-segment digits take two
// cells each; the remaining bits are icons.
//
//	Digit  Cells   Shared icon bit (0x08 of the first cell)
//	0      2, 3    Room
//	1      4, 5    TopLeftUnderline
//	2      6, 7    Window
//	3      9, 10   Thermometer
//	4      11, 12  AutoOff
//	5      13, 14  Fahrenheit
//	6      16, 17  Droplet
//	7      18, 19  Flower
//	8      20, 21  TVOC
//
// The first cell of a digit holds segments E, F and G in bits 0-2, the
// second holds A, B, C and D in bits 0-3. Cells 8, 15 and 22-26 are icons
// only.
//
// Changes are staged in memory and committed with Update:
//
//	panel := vindstryka.New(dev) // dev is an *ht1621.Dev
//	panel.Init()
//	panel.SetDigit(0, 2)
//	panel.SetDigit(1, 5)
//	panel.SetIcon(vindstryka.Celsius, true)
//	panel.Update()
//
// Digits accept hex values; A to F render as A, b, C, d, E and F.
package vindstryka
