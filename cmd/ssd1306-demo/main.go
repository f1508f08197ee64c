// Command ssd1306-demo runs a demonstration sequence on an SSD1306 panel.
//
// Flag defaults are read from the environment, optionally loaded from a .env file:
//
//	SSD1306_BUS       i2c or spi
//	SSD1306_I2C_DEV   I²C bus number, -1 for the first available bus
//	SSD1306_I2C_ADDR  I²C address
//	SSD1306_WIDTH     panel width
//	SSD1306_HEIGHT    panel height
//	SSD1306_FONT      glyph table file
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ssd1306"
	"github.com/BeatGlow/ssd1306/font"
)

const sampleText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna " +
	"aliqua. Ut enim ad minim veniam, quis nostrud exercitation " +
	"ullamco laboris nisi ut aliquip ex ea commodo consequat."

func main() {
	loadEnv(".env.local", ".env")

	var (
		busFlag        = flag.String("bus", envString("SSD1306_BUS", "i2c"), "Bus type (i2c or spi)")
		i2cDeviceFlag  = flag.Int("i2c-dev", envInt("SSD1306_I2C_DEV", ssd1306.DefaultI2CConfig.Device), "I²C bus number (default: use first available)")
		i2cAddrFlag    = flag.Int("i2c-addr", envInt("SSD1306_I2C_ADDR", int(ssd1306.DefaultI2CConfig.Addr)), "I²C device address")
		i2cSpeedFlag   = flag.Int("i2c-speed", 0, "I²C bus speed in kHz (default: bus default)")
		spiBusFlag     = flag.String("spi-bus", "", "SPI port name (default: use first available)")
		dcPinFlag      = flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC), SPI only")
		resetPinFlag   = flag.String("reset", "", "Reset GPIO pin (default: none)")
		widthFlag      = flag.Int("width", envInt("SSD1306_WIDTH", ssd1306.DefaultWidth), "Display width")
		heightFlag     = flag.Int("height", envInt("SSD1306_HEIGHT", ssd1306.DefaultHeight), "Display height")
		chargePumpFlag = flag.Bool("charge-pump", false, "Enable the internal charge pump")
		fontFlag       = flag.String("font", envString("SSD1306_FONT", ""), "Glyph table file (binary or hex text)")
		imageFlag      = flag.String("image", "", "Image file to show instead of the test pattern")
		bannerFlag     = flag.String("banner", "", "Show only this text, scaled to fill the panel")
		delayFlag      = flag.Duration("delay", 2*time.Second, "Time each screen is shown")
	)
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	face, err := glyphs(*fontFlag)
	if err != nil {
		log.Fatal(err)
	}

	var (
		conn   ssd1306.Conn
		config = &ssd1306.Config{
			Width:      *widthFlag,
			Height:     *heightFlag,
			ChargePump: *chargePumpFlag,
			Reset:      pin(*resetPinFlag),
			Font:       face,
		}
	)
	switch *busFlag {
	case "i2c":
		conn, err = ssd1306.OpenI2C(&ssd1306.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint16(*i2cAddrFlag),
			Speed:  physic.Frequency(*i2cSpeedFlag) * physic.KiloHertz,
		})
	case "spi":
		conn, err = ssd1306.OpenSPI(&ssd1306.SPIConfig{
			Bus: *spiBusFlag,
			DC:  pin(*dcPinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", *busFlag)
	}
	if err != nil {
		log.Fatal(err)
	}

	d, err := ssd1306.Open(conn, config)
	if err != nil {
		_ = conn.Close()
		log.Fatal(err)
	}
	log.Printf("using %s", d)

	if err = run(d, *imageFlag, *bannerFlag, *delayFlag); err != nil {
		_ = d.Close()
		log.Fatal(err)
	}
	if err = d.Close(); err != nil {
		log.Fatal(err)
	}
}

func pin(name string) gpio.PinOut {
	if name == "" {
		return nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "unknown GPIO pin %q\n", name)
		os.Exit(1)
	}
	return p
}

func run(d *ssd1306.Device, imagePath, bannerText string, delay time.Duration) error {
	size := d.Bounds().Size()

	if bannerText != "" {
		log.Println("Drawing banner")
		b, err := banner(bannerText, size.X, size.Y, float64(size.Y)/2)
		if err != nil {
			return err
		}
		d.DrawBitmap(0, 0, b.Pix, size.X, size.Y)
		return d.Display()
	}

	log.Println("Cycling brightness")
	if err := d.FillDisplay(); err != nil {
		return err
	}
	if err := d.Display(); err != nil {
		return err
	}
	for i := 0; i < 255; i++ {
		if err := d.SetBrightness(uint8(i)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	for i := 255; i >= 0; i-- {
		if err := d.SetBrightness(uint8(i)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err := d.SetBrightness(0x7f); err != nil {
		return err
	}
	if err := d.ClearDisplay(); err != nil {
		return err
	}

	log.Println("Drawing lines")
	d.ClearFrameBuffer()
	for i := 0; i < size.Y; i += 4 {
		d.DrawLine(0, 0, size.X-1, i)
	}
	for i := size.X; i > 0; i -= 4 {
		d.DrawLine(0, 0, i, size.Y)
	}
	if err := show(d, delay); err != nil {
		return err
	}

	log.Println("Drawing bitmap")
	b := testPattern(size.X, size.Y)
	if imagePath != "" {
		var err error
		if b, err = loadImage(imagePath, size.X, size.Y); err != nil {
			return err
		}
	}
	d.ClearFrameBuffer()
	d.DrawBitmap(0, 0, b.Pix, size.X, size.Y)
	if err := show(d, delay); err != nil {
		return err
	}

	log.Println("Drawing text")
	d.ClearFrameBuffer()
	for i, line := range wrap(sampleText, size.X/font.Advance) {
		d.DrawString(0, i*font.Height, line)
	}
	if err := show(d, delay); err != nil {
		return err
	}

	log.Println("Drawing title")
	t, err := title("SSD1306", size.X, size.Y, 16)
	if err != nil {
		return err
	}
	d.ClearFrameBuffer()
	d.DrawBitmap(0, 0, t.Pix, size.X, size.Y)
	if err = show(d, delay); err != nil {
		return err
	}

	d.ClearFrameBuffer()
	return d.Display()
}

func show(d *ssd1306.Device, delay time.Duration) error {
	if err := d.Display(); err != nil {
		return err
	}
	time.Sleep(delay)
	return nil
}
