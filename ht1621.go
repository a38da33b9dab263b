package ht1621

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// NumCells is the size of the controller display RAM, in 4-bit cells.
const NumCells = 32

// Command is a controller command code. It is clocked out as 8 bits MSB first
// followed by one don't-care bit.
type Command byte

const (
	SysDis   Command = 0x00 // Oscillator and bias generator off
	SysEn    Command = 0x01 // Oscillator on
	LCDOff   Command = 0x02 // Bias generator off
	LCDOn    Command = 0x03 // Bias generator on
	TimerDis Command = 0x04
	WDTDis   Command = 0x05
	ToneOff  Command = 0x08
	XTal32K  Command = 0x14 // Crystal oscillator clock source
	RC256K   Command = 0x18 // On-chip RC oscillator (power-on default)
	Ext256K  Command = 0x1C // External clock source

	// Bias and common count. The panel wiring decides which one applies.
	Bias12Com2 Command = 0x20
	Bias12Com3 Command = 0x24
	Bias12Com4 Command = 0x28
	Bias13Com2 Command = 0x21
	Bias13Com3 Command = 0x25
	Bias13Com4 Command = 0x29

	Tone4K Command = 0x40
	Tone2K Command = 0x60
	IRQDis Command = 0x80
	Normal Command = 0xE3
)

// ClockSource selects the system clock command sent by Init.
type ClockSource byte

const (
	ClockDefault ClockSource = iota // Leave the power-on clock selection alone
	ClockRC256K
	ClockXTal32K
	ClockExt256K
)

func (c ClockSource) command() (Command, bool) {
	switch c {
	case ClockRC256K:
		return RC256K, true
	case ClockXTal32K:
		return XTal32K, true
	case ClockExt256K:
		return Ext256K, true
	}
	return 0, false
}

// Frame IDs, 3 bits each.
const (
	idCommand byte = 0x4 // 100
	idWrite   byte = 0x5 // 101
)

const (
	defaultFreq = 100 * physic.KiloHertz
	maxFreq     = 300 * physic.KiloHertz
)

// Opts is the configuration for the HT1621 controller.
type Opts struct {
	// WR clock rate (default: 100kHz, must be ≤300kHz)
	Freq physic.Frequency

	// System clock source selected during Init
	Clock ClockSource
}

// Dev is the device handle for an HT1621 controller.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Serial interface lines
	cs   gpio.PinOut // Chip select, active low
	wr   gpio.PinOut // Write clock, data latched on rising edge
	data gpio.PinOut

	half  time.Duration // Half of one WR period
	clock ClockSource

	halted bool
}

// New creates a new HT1621 device on three output lines.
//
// Nothing is sent to the controller until Init is called.
//
// opts can be nil to use defaults.
func New(cs, wr, data gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if cs == nil || wr == nil || data == nil {
		return nil, errors.New("ht1621: cs, wr and data pins are required")
	}

	freq := opts.Freq
	if freq == 0 {
		freq = defaultFreq
	}
	if freq < physic.Hertz || freq > maxFreq {
		return nil, errors.New("ht1621: frequency must be between 1Hz and 300kHz")
	}
	if opts.Clock > ClockExt256K {
		return nil, errors.New("ht1621: invalid clock source")
	}

	return &Dev{
		cs:    cs,
		wr:    wr,
		data:  data,
		half:  freq.Period() / 2,
		clock: opts.Clock,
	}, nil
}

// Init puts the serial interface into its idle state and selects the
// configured clock source.
func (d *Dev) Init() error {
	if d.halted {
		return errors.New("ht1621: halted")
	}
	for _, p := range []gpio.PinOut{d.cs, d.wr, d.data} {
		if err := p.Out(gpio.High); err != nil {
			return fmt.Errorf("ht1621: failed to idle %s: %w", p, err)
		}
	}
	if cmd, ok := d.clock.command(); ok {
		return d.WriteCommand(cmd)
	}
	return nil
}

// WriteCommand sends a single command.
func (d *Dev) WriteCommand(cmd Command) error {
	return d.WriteCommands(cmd)
}

// WriteCommands sends one or more commands in a single command frame.
func (d *Dev) WriteCommands(cmds ...Command) error {
	if d.halted {
		return errors.New("ht1621: halted")
	}
	if len(cmds) == 0 {
		return nil
	}
	return d.frame(func() error {
		if err := d.sendBits(uint16(idCommand), 3); err != nil {
			return err
		}
		for _, c := range cmds {
			// 8 command bits plus the trailing don't-care bit.
			if err := d.sendBits(uint16(c)<<1, 9); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteRange writes cells[addr:addr+n] to display RAM starting at address
// addr, using the successive address write mode. Only the low nibble of each
// cell is sent.
func (d *Dev) WriteRange(cells []byte, addr, n int) error {
	if d.halted {
		return errors.New("ht1621: halted")
	}
	if addr < 0 || addr >= NumCells {
		return errors.New("ht1621: address out of range")
	}
	if n < 0 || n > NumCells-addr || n > len(cells)-addr {
		return errors.New("ht1621: invalid range")
	}
	if n == 0 {
		return nil
	}
	return d.frame(func() error {
		if err := d.sendBits(uint16(idWrite), 3); err != nil {
			return err
		}
		if err := d.sendBits(uint16(addr), 6); err != nil {
			return err
		}
		for _, c := range cells[addr : addr+n] {
			if err := d.sendNibble(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Display turns the LCD bias generator on or off. Display RAM is kept.
func (d *Dev) Display(on bool) error {
	cmd := LCDOff
	if on {
		cmd = LCDOn
	}
	return d.WriteCommand(cmd)
}

// Halt turns the display and the oscillator off.
// After calling Halt, the device refuses further writes.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.WriteCommands(LCDOff, SysDis)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht1621.Dev{cs:%s wr:%s data:%s}", d.cs, d.wr, d.data)
}

// frame runs fn with CS asserted and releases CS afterwards, even when fn
// fails part way.
func (d *Dev) frame(fn func() error) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("ht1621: failed to assert CS: %w", err)
	}
	err := fn()
	if errCS := d.cs.Out(gpio.High); err == nil && errCS != nil {
		err = fmt.Errorf("ht1621: failed to release CS: %w", errCS)
	}
	return err
}

// sendBits clocks out the low n bits of v, MSB first.
func (d *Dev) sendBits(v uint16, n int) error {
	for i := n - 1; i >= 0; i-- {
		if err := d.sendBit(v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// sendNibble clocks out the low nibble of v, LSB (D0) first.
func (d *Dev) sendNibble(v byte) error {
	for i := 0; i < 4; i++ {
		if err := d.sendBit(v&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) sendBit(b bool) error {
	if err := d.wr.Out(gpio.Low); err != nil {
		return fmt.Errorf("ht1621: failed to pull WR low: %w", err)
	}
	if err := d.data.Out(gpio.Level(b)); err != nil {
		return fmt.Errorf("ht1621: failed to set DATA: %w", err)
	}
	time.Sleep(d.half)
	if err := d.wr.Out(gpio.High); err != nil {
		return fmt.Errorf("ht1621: failed to pull WR high: %w", err)
	}
	time.Sleep(d.half)
	return nil
}
