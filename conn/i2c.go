package conn

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
)

// I2C is a device on an I²C bus.
type I2C struct {
	bus    i2c.Bus
	closer i2c.BusCloser
	dev    *i2c.Dev
}

// OpenI2C opens the numbered I²C bus, use -1 for the first available bus.
func OpenI2C(device int, addr uint16) (*I2C, error) {
	var (
		bus i2c.BusCloser
		err error
	)
	if device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.FormatInt(int64(device), 10))
	}
	if err != nil {
		return nil, err
	}

	c := NewI2C(bus, addr)
	c.closer = bus
	return c, nil
}

// NewI2C uses an already opened bus. Closing the returned handle leaves the bus open.
func NewI2C(bus i2c.Bus, addr uint16) *I2C {
	return &I2C{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: addr},
	}
}

func (c *I2C) String() string {
	return fmt.Sprintf("I²C bus %s addr %#02x", c.bus, c.dev.Addr)
}

func (c *I2C) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// SetSpeed changes the bus clock.
func (c *I2C) SetSpeed(f physic.Frequency) error {
	return c.bus.SetSpeed(f)
}

// WriteRegister writes value to register reg in a single transaction.
func (c *I2C) WriteRegister(reg, value byte) error {
	return c.dev.Tx([]byte{reg, value}, nil)
}
