package conn

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// ErrDCPin is returned when a SPI handle is created without a usable data/command pin.
var ErrDCPin = errors.New("conn: data/command (DC) GPIO pin is invalid")

// SPI is a 4-wire SPI device; the register selects the level of the data/command pin.
type SPI struct {
	port    spi.Port
	closer  spi.PortCloser
	c       spi.Conn
	dc      gpio.PinOut
	dcLevel gpio.Level
	dcSet   bool
}

// OpenSPI opens the named SPI port ("" for the first available one).
func OpenSPI(name string, speed physic.Frequency, dc gpio.PinOut) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, err
	}
	c, err := NewSPI(port, speed, dc)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	c.closer = port
	return c, nil
}

// NewSPI connects to an already opened port. Closing the returned handle leaves the port open.
func NewSPI(port spi.Port, speed physic.Frequency, dc gpio.PinOut) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &SPI{
		port: port,
		c:    c,
		dc:   dc,
	}, nil
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI port %s", c.port)
}

func (c *SPI) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *SPI) updateDC(level gpio.Level) error {
	if c.dcSet && c.dcLevel == level {
		return nil
	}
	if err := c.dc.Out(level); err != nil {
		return err
	}
	c.dcLevel, c.dcSet = level, true
	return nil
}

// WriteRegister drives D/C high for the data register and low otherwise, then clocks out value.
func (c *SPI) WriteRegister(reg, value byte) error {
	if err := c.updateDC(gpio.Level(reg&DataRegister != 0)); err != nil {
		return err
	}
	return c.c.Tx([]byte{value}, nil)
}
