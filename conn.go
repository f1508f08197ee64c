package ssd1306

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ssd1306/conn"
)

// Conn is the connection interface for communicating with hardware.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// WriteRegister writes one byte to the command (0x00) or data (0x40) register.
	WriteRegister(reg, value byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C bus number, use -1 to use the first available bus.
	Device int

	// Addr is the I²C address.
	Addr uint16

	// Speed is the bus clock, 0 leaves the bus default.
	Speed physic.Frequency
}

// DefaultI2CConfig is the configuration of the common 0x3C modules.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

// OpenI2C opens an I²C bus from the host's registry.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}
	addr := config.Addr
	if addr == 0 {
		addr = DefaultI2CConfig.Addr
	}

	c, err := conn.OpenI2C(config.Device, addr)
	if err != nil {
		return nil, err
	}
	if config.Speed > 0 {
		if err = c.SetSpeed(config.Speed); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	logf("opened %s", c)
	return c, nil
}

// NewI2C talks to the panel at addr on a bus owned by the caller.
func NewI2C(bus i2c.Bus, addr uint16) Conn {
	return conn.NewI2C(bus, addr)
}

// SPIConfig describes the 4-wire SPI configuration.
type SPIConfig struct {
	// Bus is the SPI port name, "" selects the first available port.
	Bus string

	// Speed is the maximum clock, 0 selects DefaultSPIConfig.Speed.
	Speed physic.Frequency

	// DC is the data/command pin.
	DC gpio.PinOut
}

// DefaultSPIConfig are the default configuration values. The controller is rated for 10MHz.
var DefaultSPIConfig = SPIConfig{
	Speed: 8 * physic.MegaHertz,
}

// OpenSPI opens a SPI port from the host's registry.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	speed := config.Speed
	if speed == 0 {
		speed = DefaultSPIConfig.Speed
	}

	c, err := conn.OpenSPI(config.Bus, speed, config.DC)
	if err != nil {
		return nil, err
	}
	logf("opened %s", c)
	return c, nil
}
