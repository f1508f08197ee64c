// Package ssd1306 drives SSD1306 monochrome OLED controllers.
//
// A Device owns an in-memory frame buffer and the bus connection to the controller. Drawing
// methods only change the frame buffer; Display transmits it to the panel in one flush. All
// methods are safe for concurrent use, a flush never observes a half drawn frame.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/ssd1306/conn"
	"github.com/BeatGlow/ssd1306/draw"
	"github.com/BeatGlow/ssd1306/font"
	"github.com/BeatGlow/ssd1306/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("SSD1306_DEBUG") != ""
}

func logf(format string, args ...interface{}) {
	if debug {
		log.Printf("ssd1306: "+format, args...)
	}
}

// Errors
var (
	ErrNotInitialized = errors.New("ssd1306: device is not initialized")
	ErrClosed         = errors.New("ssd1306: device is closed")
	ErrSize           = errors.New("ssd1306: unsupported panel size")
)

// BusError is a failed register write.
type BusError struct {
	// Op is the device operation that was running.
	Op string

	// Register and Value are the write that failed.
	Register byte
	Value    byte

	Err error
}

func (e *BusError) Error() string {
	kind := "command"
	if e.Register == conn.DataRegister {
		kind = "data"
	}
	return fmt.Sprintf("ssd1306: %s: %s byte %#02x: %v", e.Op, kind, e.Value, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Defaults
const (
	DefaultWidth       = 128
	DefaultHeight      = 64
	DefaultContrast    = 0x10
	DefaultSettleDelay = 100 * time.Microsecond
)

// Config is the device configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, a multiple of 8.
	Height int

	// Contrast loaded by Init, 0 selects DefaultContrast.
	Contrast uint8

	// ChargePump enables the internal charge pump during Init.
	ChargePump bool

	// SettleDelay is the wait before the first command, 0 selects DefaultSettleDelay.
	SettleDelay time.Duration

	// Reset pin, optional. It is pulsed low before initialization.
	Reset gpio.PinOut

	// Font used by DrawCharacter and DrawString.
	Font font.Face
}

// Mode is the source of the image shown on the panel.
type Mode uint8

// Modes
const (
	// ModeBuffered shows the controller RAM, as written by Display.
	ModeBuffered Mode = iota

	// ModeAllOn lights every pixel regardless of RAM, see FillDisplay.
	ModeAllOn
)

func (m Mode) String() string {
	switch m {
	case ModeBuffered:
		return "buffered"
	case ModeAllOn:
		return "all-on"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

type state uint8

const (
	stateUninitialized state = iota
	stateReady
	stateClosed
)

// Device is an SSD1306 panel.
type Device struct {
	mu         sync.Mutex
	c          Conn
	fb         *pixel.FrameBuffer
	face       font.Face
	geometry   geometry
	reset      gpio.PinOut
	settle     time.Duration
	chargePump bool
	initial    uint8
	state      state
	contrast   uint8
	on         bool
	inverted   bool
	mode       Mode
}

// New allocates the device state without talking to the controller; call Init before any
// protocol operation.
func New(c Conn, config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}
	width, height := config.Width, config.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	g, ok := lookupGeometry(width, height)
	if !ok {
		return nil, fmt.Errorf("%w %dx%d", ErrSize, width, height)
	}

	d := &Device{
		c:          c,
		fb:         pixel.NewFrameBuffer(width, height),
		face:       config.Font,
		geometry:   g,
		reset:      config.Reset,
		settle:     config.SettleDelay,
		chargePump: config.ChargePump,
		initial:    config.Contrast,
	}
	if d.settle == 0 {
		d.settle = DefaultSettleDelay
	}
	if d.initial == 0 {
		d.initial = DefaultContrast
	}
	return d, nil
}

// Open allocates and initializes a device.
func Open(c Conn, config *Config) (*Device, error) {
	d, err := New(c, config)
	if err != nil {
		return nil, err
	}
	if err = d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d on %s", d.geometry.width, d.geometry.height, d.c)
}

// Bounds is the panel bounding box.
func (d *Device) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// command sends every byte of cmds to the command register.
func (d *Device) command(op string, cmds ...Command) error {
	for _, cmd := range cmds {
		for _, b := range cmd.Bytes() {
			if err := d.c.WriteRegister(conn.CommandRegister, b); err != nil {
				return &BusError{Op: op, Register: conn.CommandRegister, Value: b, Err: err}
			}
		}
	}
	return nil
}

func (d *Device) ready() error {
	switch d.state {
	case stateReady:
		return nil
	case stateClosed:
		return ErrClosed
	default:
		return ErrNotInitialized
	}
}

// Init resets the controller and sends the power-up sequence. It may be called again to
// recover a panel that lost power; on failure the device stays uninitialized.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == stateClosed {
		return ErrClosed
	}
	d.state = stateUninitialized

	if d.reset != nil {
		if err := d.reset.Out(gpio.Low); err != nil {
			return err
		}
		time.Sleep(d.settle)
		if err := d.reset.Out(gpio.High); err != nil {
			return err
		}
	}
	time.Sleep(d.settle)

	cmds := initSequence(d.geometry, d.initial, d.chargePump)
	logf("init %dx%d: %v", d.geometry.width, d.geometry.height, cmds)
	if err := d.command("init", cmds...); err != nil {
		return err
	}

	d.state = stateReady
	d.contrast = d.initial
	d.on = true
	d.inverted = false
	d.mode = ModeBuffered
	return nil
}

// Display flushes the frame buffer to the panel.
func (d *Device) Display() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}

	var (
		colStart = d.geometry.colStart
		colEnd   = colStart + byte(d.geometry.width-1)
		pageEnd  = byte(d.fb.Pages() - 1)
	)
	if err := d.command("display",
		SetColumnAddress(colStart, colEnd),
		SetPageAddress(0, pageEnd),
	); err != nil {
		return err
	}
	for _, b := range d.fb.Pix {
		if err := d.c.WriteRegister(conn.DataRegister, b); err != nil {
			return &BusError{Op: "display", Register: conn.DataRegister, Value: b, Err: err}
		}
	}
	logf("flushed %d bytes", len(d.fb.Pix))
	return nil
}

// SetBrightness changes the contrast level.
func (d *Device) SetBrightness(level uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if err := d.command("set brightness", SetContrast(level)); err != nil {
		return err
	}
	d.contrast = level
	return nil
}

// Contrast is the last contrast level sent to the panel.
func (d *Device) Contrast() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contrast
}

// FillDisplay lights the entire panel without touching display RAM or the frame buffer.
func (d *Device) FillDisplay() error {
	return d.setMode("fill display", ModeAllOn)
}

// ClearDisplay ends FillDisplay: the panel shows display RAM again. The frame buffer is not
// changed and is not flushed.
func (d *Device) ClearDisplay() error {
	return d.setMode("clear display", ModeBuffered)
}

func (d *Device) setMode(op string, mode Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if err := d.command(op, EntireDisplayOn(mode == ModeAllOn)); err != nil {
		return err
	}
	logf("mode %s", mode)
	d.mode = mode
	return nil
}

// Mode reports whether the panel shows RAM or is forced on.
func (d *Device) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// Show switches the panel on or off. RAM contents are retained while off.
func (d *Device) Show(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if err := d.command("show", SetDisplayPower(on)); err != nil {
		return err
	}
	d.on = on
	return nil
}

// IsOn reports whether the panel is switched on.
func (d *Device) IsOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.on
}

// Invert swaps lit and unlit pixels on the panel.
func (d *Device) Invert(inverted bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ready(); err != nil {
		return err
	}
	if err := d.command("invert", SetInverted(inverted)); err != nil {
		return err
	}
	d.inverted = inverted
	return nil
}

// Close switches the panel off and closes the connection. Closing twice is a no-op.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == stateClosed {
		return nil
	}
	var err error
	if d.state == stateReady && d.on {
		err = d.command("close", DisplayOff())
		d.on = false
	}
	d.state = stateClosed
	if cerr := d.c.Close(); err == nil {
		err = cerr
	}
	return err
}

// SetFont changes the face used for text, nil disables text drawing.
func (d *Device) SetFont(face font.Face) {
	d.mu.Lock()
	d.face = face
	d.mu.Unlock()
}

// SetPixel lights or clears one pixel. Coordinates outside the panel are ignored.
func (d *Device) SetPixel(x, y int, on bool) {
	d.mu.Lock()
	d.fb.SetBit(x, y, on)
	d.mu.Unlock()
}

// Pixel reports whether the pixel at (x, y) is lit in the frame buffer.
func (d *Device) Pixel(x, y int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fb.Bit(x, y)
}

// DrawLine lights the pixels of the segment between both end points, inclusive.
func (d *Device) DrawLine(x0, y0, x1, y1 int) {
	d.mu.Lock()
	draw.Line(d.fb, image.Pt(x0, y0), image.Pt(x1, y1), pixel.On)
	d.mu.Unlock()
}

// DrawCharacter draws one glyph with its top left corner at (x, y).
func (d *Device) DrawCharacter(x, y int, ch byte) {
	d.mu.Lock()
	draw.Character(d.fb, d.face, x, y, ch, pixel.On)
	d.mu.Unlock()
}

// DrawString draws s left to right and returns the x position after the last character.
// Characters that do not fit on the panel entirely are skipped.
func (d *Device) DrawString(x, y int, s string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return draw.String(d.fb, d.face, x, y, s, pixel.On)
}

// DrawBitmap draws a packed, MSB first, width by height bitmap at (x, y). Unset bits leave
// the frame buffer as is.
func (d *Device) DrawBitmap(x, y int, bitmap []byte, width, height int) {
	d.mu.Lock()
	draw.Bitmap(d.fb, x, y, pixel.WrapBitmap(bitmap, width, height), pixel.On)
	d.mu.Unlock()
}

// DrawImage scales src over the whole panel, replacing the frame buffer. Pixels are lit where
// the scaled image is bright.
func (d *Device) DrawImage(src image.Image) {
	d.mu.Lock()
	draw.Scale(d.fb, d.fb.Bounds(), src, draw.Src)
	d.mu.Unlock()
}

// FillFrameBuffer lights every pixel of the frame buffer.
func (d *Device) FillFrameBuffer() {
	d.mu.Lock()
	d.fb.Fill(pixel.On)
	d.mu.Unlock()
}

// ClearFrameBuffer clears every pixel of the frame buffer.
func (d *Device) ClearFrameBuffer() {
	d.mu.Lock()
	d.fb.Clear()
	d.mu.Unlock()
}

// Snapshot returns a copy of the frame buffer bytes, in flush order.
func (d *Device) Snapshot() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.fb.Pix...)
}
