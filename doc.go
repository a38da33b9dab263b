// Package ht1621 controls a Holtek HT1621 segment LCD controller over its
// three-wire serial interface.
//
// The HT1621 drives up to 32 segment lines against 4 commons, giving 32
// addressable 4-bit cells of display RAM. It has no display geometry of its
// own: what a bit lights depends on how the glass is wired. Panel packages
// such as vindstryka map digits and icons to cells and use this package to
// push them to the controller.
//
// # Hardware Connection
//
// The serial interface is bit-banged on three GPIO outputs:
//
//	Controller Pin → System Pin
//	VSS            → GND
//	VDD            → 3.3V or 5V
//	CS             → GPIO (any available pin)
//	WR             → GPIO (any available pin)
//	DATA           → GPIO (any available pin)
//	RD             → not connected (reads are not supported)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/ht1621"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		dev, _ := ht1621.New(
//			gpioreg.ByName("GPIO8"),
//			gpioreg.ByName("GPIO23"),
//			gpioreg.ByName("GPIO24"),
//			&ht1621.Opts{Clock: ht1621.ClockRC256K},
//		)
//		defer dev.Halt()
//
//		dev.Init()
//		dev.WriteCommands(ht1621.SysEn, ht1621.LCDOn, ht1621.Bias13Com4)
//
//		// All segments on.
//		cells := make([]byte, ht1621.NumCells)
//		for i := range cells {
//			cells[i] = 0x0F
//		}
//		dev.WriteRange(cells, 0, ht1621.NumCells)
//	}
//
// # Frames
//
// Each transfer is one frame framed by CS low and CS high. The controller
// latches DATA on every WR rising edge.
//
//	Command: 1 0 0 | C7..C0 X | C7..C0 X | ...
//	Write:   1 0 1 | A5..A0 | D0..D3 | D0..D3 | ...
//
// Command bits are sent MSB first, each command followed by a don't-care bit.
// A write carries the start address MSB first, then the low nibble of each
// cell LSB first; the controller increments the address after every nibble.
//
// # Timing
//
// Opts.Freq sets the WR clock rate. The datasheet allows up to 150kHz at
// 3V and 300kHz at 5V; the default of 100kHz is safe for both.
//
// # Datasheet
//
// "HT1621 RAM Mapping 32x4 LCD Controller for I/O MCU", available from
// https://www.holtek.com
package ht1621
