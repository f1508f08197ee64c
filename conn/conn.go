// Package conn contains the bus handles used to talk to a panel controller.
//
// Every handle writes one register at a time: the register selects whether the value is a
// command byte or a data byte for the controller.
package conn

// Control bytes of the SSD1306 serial interface. On I²C these are sent ahead of the value, on
// 4-wire SPI they select the level of the data/command pin.
const (
	CommandRegister byte = 0x00
	DataRegister    byte = 0x40
)
