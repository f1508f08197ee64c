package ssd1306

import (
	"fmt"
	"strings"
)

// Opcodes
const (
	opSetMemoryMode         = 0x20
	opSetColumnAddr         = 0x21
	opSetPageAddr           = 0x22
	opSetContrast           = 0x81
	opSetChargePump         = 0x8D
	opSetRemap              = 0xA0
	opSetSegmentRemap       = 0xA1
	opSetDisplayAllOnResume = 0xA4
	opSetDisplayAllOn       = 0xA5
	opSetNormalDisplay      = 0xA6
	opSetInvertDisplay      = 0xA7
	opSetMultiplexRatio     = 0xA8
	opSetDisplayOff         = 0xAE
	opSetDisplayOn          = 0xAF
	opSetComScanInc         = 0xC0
	opSetComScanDec         = 0xC8
	opSetDisplayOffset      = 0xD3
	opSetDisplayClockDiv    = 0xD5
	opSetPrecharge          = 0xD9
	opSetComPins            = 0xDA
	opSetVCOMDeselect       = 0xDB
)

var opcodeNames = map[byte]string{
	opSetMemoryMode:         "SetMemoryAddressingMode",
	opSetColumnAddr:         "SetColumnAddress",
	opSetPageAddr:           "SetPageAddress",
	opSetContrast:           "SetContrast",
	opSetChargePump:         "SetChargePump",
	opSetRemap:              "SetSegmentRemap(off)",
	opSetSegmentRemap:       "SetSegmentRemap(on)",
	opSetDisplayAllOnResume: "EntireDisplayOn(off)",
	opSetDisplayAllOn:       "EntireDisplayOn(on)",
	opSetNormalDisplay:      "SetNormalDisplay",
	opSetInvertDisplay:      "SetInvertDisplay",
	opSetMultiplexRatio:     "SetMultiplexRatio",
	opSetDisplayOff:         "DisplayOff",
	opSetDisplayOn:          "DisplayOn",
	opSetComScanInc:         "SetCOMScanDirection(normal)",
	opSetComScanDec:         "SetCOMScanDirection(remapped)",
	opSetDisplayOffset:      "SetDisplayOffset",
	opSetDisplayClockDiv:    "SetClockDivide",
	opSetPrecharge:          "SetPrechargePeriod",
	opSetComPins:            "SetCOMPins",
	opSetVCOMDeselect:       "SetVCOMHDeselect",
}

// AddressingMode selects how the controller advances its RAM pointer after each data byte.
type AddressingMode byte

// HorizontalAddressing advances column by column and wraps to the next page,
// so a full frame is one contiguous data stream.
const HorizontalAddressing AddressingMode = 0x00

// Command is one controller command: an opcode followed by its operand bytes.
type Command struct {
	Opcode byte
	Args   []byte
}

func cmd(opcode byte, args ...byte) Command {
	return Command{Opcode: opcode, Args: args}
}

// Bytes returns the command as it is sent on the wire.
func (c Command) Bytes() []byte {
	return append([]byte{c.Opcode}, c.Args...)
}

func (c Command) String() string {
	name, ok := opcodeNames[c.Opcode]
	if !ok {
		name = fmt.Sprintf("%#02x", c.Opcode)
	}
	if len(c.Args) == 0 {
		return name
	}
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = fmt.Sprintf("%#02x", arg)
	}
	return name + " " + strings.Join(args, " ")
}

func DisplayOff() Command { return cmd(opSetDisplayOff) }
func DisplayOn() Command  { return cmd(opSetDisplayOn) }

// SetDisplayPower switches the panel on or off.
func SetDisplayPower(on bool) Command {
	if on {
		return DisplayOn()
	}
	return DisplayOff()
}

func SetMemoryAddressingMode(mode AddressingMode) Command {
	return cmd(opSetMemoryMode, byte(mode))
}

// SetContrast selects one of 256 contrast steps.
func SetContrast(level uint8) Command {
	return cmd(opSetContrast, level)
}

// SetSegmentRemap maps column address 127 to SEG0 when remapped is set.
func SetSegmentRemap(remapped bool) Command {
	if remapped {
		return cmd(opSetSegmentRemap)
	}
	return cmd(opSetRemap)
}

// SetMultiplexRatio sets the number of active rows minus one.
func SetMultiplexRatio(ratio byte) Command {
	return cmd(opSetMultiplexRatio, ratio)
}

// SetCOMScanDirection scans from COM[N-1] to COM0 when remapped is set.
func SetCOMScanDirection(remapped bool) Command {
	if remapped {
		return cmd(opSetComScanDec)
	}
	return cmd(opSetComScanInc)
}

func SetDisplayOffset(offset byte) Command {
	return cmd(opSetDisplayOffset, offset)
}

// SetClockDivide sets the oscillator frequency (high nibble) and the clock divide ratio minus one
// (low nibble).
func SetClockDivide(value byte) Command {
	return cmd(opSetDisplayClockDiv, value)
}

func SetPrechargePeriod(value byte) Command {
	return cmd(opSetPrecharge, value)
}

func SetCOMPins(value byte) Command {
	return cmd(opSetComPins, value)
}

func SetVCOMHDeselect(value byte) Command {
	return cmd(opSetVCOMDeselect, value)
}

// EntireDisplayOn forces every pixel on, ignoring display RAM. Switching it off resumes
// rendering from RAM.
func EntireDisplayOn(on bool) Command {
	if on {
		return cmd(opSetDisplayAllOn)
	}
	return cmd(opSetDisplayAllOnResume)
}

// SetInverted swaps the meaning of lit and unlit RAM bits.
func SetInverted(inverted bool) Command {
	if inverted {
		return cmd(opSetInvertDisplay)
	}
	return cmd(opSetNormalDisplay)
}

// SetColumnAddress sets the column window used by horizontal and vertical addressing.
func SetColumnAddress(start, end byte) Command {
	return cmd(opSetColumnAddr, start, end)
}

// SetPageAddress sets the page window used by horizontal and vertical addressing.
func SetPageAddress(start, end byte) Command {
	return cmd(opSetPageAddr, start, end)
}

// SetChargePump enables the internal DC/DC converter, needed by modules without external VCC.
func SetChargePump(enable bool) Command {
	if enable {
		return cmd(opSetChargePump, 0x14)
	}
	return cmd(opSetChargePump, 0x10)
}

// geometry holds the size dependent init parameters.
type geometry struct {
	width, height int
	clockDiv      byte
	comPins       byte
	colStart      byte
}

var geometries = []geometry{
	{128, 64, 0x80, 0x12, 0},
	{128, 32, 0x80, 0x02, 0},
	{96, 16, 0x60, 0x02, 0},
	{64, 48, 0x80, 0x12, 32},
	{64, 32, 0x80, 0x12, 32},
}

func lookupGeometry(width, height int) (geometry, bool) {
	for _, g := range geometries {
		if g.width == width && g.height == height {
			return g, true
		}
	}
	return geometry{}, false
}

// initSequence is the power-up command list. For a 128x64 panel with the default contrast and
// no charge pump it is the 22 byte sequence AE 20 00 81 10 A1 A8 3F C8 D3 00 D5 80 D9 22 DA 12
// DB 20 A4 A6 AF.
func initSequence(g geometry, contrast uint8, chargePump bool) []Command {
	cmds := []Command{
		DisplayOff(),
		SetMemoryAddressingMode(HorizontalAddressing),
		SetContrast(contrast),
		SetSegmentRemap(true),
		SetMultiplexRatio(byte(g.height - 1)),
		SetCOMScanDirection(true),
		SetDisplayOffset(0x00),
		SetClockDivide(g.clockDiv),
		SetPrechargePeriod(0x22),
		SetCOMPins(g.comPins),
		SetVCOMHDeselect(0x20),
		EntireDisplayOn(false),
		SetInverted(false),
	}
	if chargePump {
		cmds = append(cmds, SetChargePump(true))
	}
	return append(cmds, DisplayOn())
}
