// Package vindstryka drives the segment LCD of the Vindstryka air quality
// sensor through an HT1621 controller.
package vindstryka

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/ht1621"
)

// Controller is the part of the HT1621 driver the panel needs.
// *ht1621.Dev implements it.
type Controller interface {
	Init() error
	WriteCommand(cmd ht1621.Command) error
	WriteRange(cells []byte, addr, n int) error
}

// Buffer mirrors the controller cells wired to the panel. Only the low nibble
// of each cell reaches the glass.
type Buffer [NumCells]byte

// Dev is the handle for a Vindstryka panel.
//
// SetDigit, SetIcon and Clear only stage changes in memory. Nothing is shown
// until Update is called.
//
// Dev is not safe for concurrent use. Callers with several producers must
// hold their own lock across a stage and commit sequence.
type Dev struct {
	c   Controller
	buf Buffer
}

// New returns a panel handle using c. The controller is not touched until
// Init or Update is called.
func New(c Controller) *Dev {
	return &Dev{c: c}
}

// Init brings the controller up, blanks the panel and configures bias.
//
// The cleared buffer is flushed before the bias command, matching the
// controller's power-on sequence.
func (d *Dev) Init() error {
	if err := d.c.Init(); err != nil {
		return fmt.Errorf("vindstryka: controller init: %w", err)
	}
	for _, cmd := range []ht1621.Command{ht1621.SysEn, ht1621.LCDOn} {
		if err := d.c.WriteCommand(cmd); err != nil {
			return fmt.Errorf("vindstryka: command 0x%02X: %w", byte(cmd), err)
		}
	}
	d.Clear()
	if err := d.Update(); err != nil {
		return err
	}
	if err := d.c.WriteCommand(ht1621.Bias13Com4); err != nil {
		return fmt.Errorf("vindstryka: bias: %w", err)
	}
	return nil
}

// Clear turns every digit and icon off. It must be followed by Update.
func (d *Dev) Clear() {
	d.buf = Buffer{}
}

// Update sends the whole buffer to the controller.
func (d *Dev) Update() error {
	if err := d.c.WriteRange(d.buf[:], 0, NumCells); err != nil {
		return fmt.Errorf("vindstryka: update: %w", err)
	}
	return nil
}

// SetDigit stages hex value (0x0-0xF) at digit position pos (0-8).
//
// Out of range positions or values are ignored. Icon bits sharing the digit's
// cells are left untouched.
func (d *Dev) SetDigit(pos, value int) {
	if pos < 0 || pos >= NumDigits || value < 0 || value > 0xF {
		return
	}
	first := digitCells[pos]
	seg := digitSegments[value]
	d.buf[first] = d.buf[first]&^firstCellMask | byte(seg>>8)
	d.buf[first+1] = d.buf[first+1]&^secondCellMask | byte(seg)
}

// Digit returns the hex value currently staged at pos. ok is false when pos
// is out of range or the segments do not form a known glyph, such as after
// Clear.
func (d *Dev) Digit(pos int) (value int, ok bool) {
	if pos < 0 || pos >= NumDigits {
		return 0, false
	}
	first := digitCells[pos]
	seg := uint16(d.buf[first]&firstCellMask)<<8 | uint16(d.buf[first+1]&secondCellMask)
	for v, s := range digitSegments {
		if s == seg {
			return v, true
		}
	}
	return 0, false
}

// SetIcon stages icon on or off. Undefined icons are ignored.
func (d *Dev) SetIcon(icon Icon, on bool) {
	if !icon.Valid() {
		return
	}
	a := iconAddrs[icon]
	if on {
		d.buf[a.cell] |= a.mask
	} else {
		d.buf[a.cell] &^= a.mask
	}
}

// IconOn reports whether icon is staged on.
func (d *Dev) IconOn(icon Icon) bool {
	if !icon.Valid() {
		return false
	}
	a := iconAddrs[icon]
	return d.buf[a.cell]&a.mask != 0
}

// Buffer returns a copy of the staged cells.
func (d *Dev) Buffer() Buffer {
	return d.buf
}

// Halt turns the panel off if the controller supports it. The staged buffer
// is kept.
func (d *Dev) Halt() error {
	h, ok := d.c.(interface{ Halt() error })
	if !ok {
		return errors.New("vindstryka: controller cannot be halted")
	}
	return h.Halt()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("vindstryka.Dev{%v}", d.c)
}
