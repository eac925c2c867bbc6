// Package lights drives the three logical light devices of the SC-02C:
// the display backlight, the capacitive button backlight and the
// notification LED. Each device maps onto a fixed sysfs control file; the
// package multiplexes set-light calls onto those files and remembers the
// last requested state of each device.
package lights

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Logical device names, as used by the host when opening a light device.
const (
	Backlight     = "backlight"
	Buttons       = "buttons"
	Notifications = "notifications"
)

// Values understood by the BLN touchkey driver
const (
	blnLightOn  = 1
	blnLightOff = 2
)

// Values understood by the BLN notification driver
const (
	blnNotifyOn  = 1
	blnNotifyOff = 0
)

// Values understood by the CM7 notification backlight driver. These do not
// match the BLN notification values: 2 means off here, not 0.
const (
	cm7EnableBL  = 1
	cm7DisableBL = 2
)

// Paths holds the sysfs control files for one handset. The values never
// change on real hardware; tests and bench rigs point them at a staging
// directory instead.
type Paths struct {
	LCD          string `toml:"lcd"`
	Keyboard     string `toml:"keyboard"`
	Buttons      string `toml:"buttons"`
	Notification string `toml:"notification"`
	CM7          string `toml:"cm7"`
}

// DefaultPaths returns the control files exposed by the SC-02C kernel.
func DefaultPaths() Paths {
	return Paths{
		LCD: "/sys/class/backlight/pwm-backlight/brightness",
		// the keyboard backlight node exists but no handler drives it
		Keyboard:     "/sys/class/leds/keyboard-backlight/brightness",
		Buttons:      "/sys/class/misc/melfas_touchkey/brightness",
		Notification: "/sys/class/misc/backlightnotification/notification_led",
		CM7:          "/sys/class/misc/notification/led",
	}
}

// WithRoot returns a copy of the paths with root prepended to every file.
func (p Paths) WithRoot(root string) Paths {
	p.LCD = filepath.Join(root, p.LCD)
	p.Keyboard = filepath.Join(root, p.Keyboard)
	p.Buttons = filepath.Join(root, p.Buttons)
	p.Notification = filepath.Join(root, p.Notification)
	p.CM7 = filepath.Join(root, p.CM7)
	return p
}

// ErrUnsupportedDevice is returned by Open for an unknown device name
var ErrUnsupportedDevice = errors.New("unsupported light device")

// ErrDeviceClosed is returned when setting a light through a closed Device
var ErrDeviceClosed = errors.New("light device is closed")

// Module multiplexes the three logical light devices onto the sysfs control
// files. A single mutex covers all devices: the touchkey and notification
// drivers share hardware lines, so writes from different devices are never
// allowed to interleave.
type Module struct {
	paths  Paths
	writer *sysfsWriter

	lock         sync.Mutex
	backlight    int
	buttonsOn    bool
	notification State
}

// New creates a Module driving the given control files.
func New(paths Paths) *Module {
	return &Module{
		paths:     paths,
		writer:    newSysfsWriter(),
		backlight: 255,
	}
}

// Open returns a Device bound to the named logical light. The three valid
// names are Backlight, Buttons and Notifications; any other name fails with
// ErrUnsupportedDevice.
func (m *Module) Open(name string) (*Device, error) {
	var set func(State) error
	switch name {
	case Backlight:
		set = m.setBacklight
	case Buttons:
		set = m.setButtons
	case Notifications:
		set = m.setNotifications
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDevice, name)
	}
	log.WithField("device", name).Debug("light device opened")
	return &Device{name: name, set: set}, nil
}

func (m *Module) setBacklight(state State) error {
	brightness := state.Brightness()
	m.lock.Lock()
	defer m.lock.Unlock()
	m.backlight = brightness
	return m.writer.writeInt(m.paths.LCD, brightness)
}

func (m *Module) setButtons(state State) error {
	on := state.Lit()
	m.lock.Lock()
	defer m.lock.Unlock()
	m.buttonsOn = on
	value := blnLightOff
	if on {
		value = blnLightOn
	}
	return m.writer.writeInt(m.paths.Buttons, value)
}

func (m *Module) setNotifications(state State) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.notification = state
	log.WithField("color", fmt.Sprintf("0x%08x", state.Color)).Debug("set notification")

	value := blnNotifyOff
	if state.Lit() {
		value = blnNotifyOn
	}
	if err := m.writer.writeInt(m.paths.Notification, value); err != nil {
		log.WithError(err).Warning("failed to set notification led")
	}

	brightness := state.Brightness()
	// The first condition only holds for color 0, since brightness is a
	// non-negative function of the color's RGB bits. Kept as the CM7 builds
	// shipped it.
	if uint32(brightness)+state.Color == 0 || brightness > 100 {
		value = cm7DisableBL
		if state.Color&0x00ffffff != 0 {
			value = cm7EnableBL
		}
		if err := m.writer.writeInt(m.paths.CM7, value); err != nil {
			log.WithError(err).Warning("failed to set notification backlight")
		}
	}

	// hosts treat notification updates as fire and forget
	return nil
}

// Status is a snapshot of the last requested state of each device.
type Status struct {
	Backlight    int   `json:"backlight"`
	ButtonsOn    bool  `json:"buttonsOn"`
	Notification State `json:"notification"`
}

// Status returns the last state requested for each device. A failed write
// does not roll this back: the snapshot reflects what was asked for, not
// necessarily what the hardware applied.
func (m *Module) Status() Status {
	m.lock.Lock()
	defer m.lock.Unlock()
	return Status{
		Backlight:    m.backlight,
		ButtonsOn:    m.buttonsOn,
		Notification: m.notification,
	}
}

var _ prometheus.Collector = &Module{}

// Describe implements the prometheus.Collector interface
func (m *Module) Describe(descs chan<- *prometheus.Desc) {
	m.writer.writes.Describe(descs)
	m.writer.writeErrors.Describe(descs)
}

// Collect implements the prometheus.Collector interface
func (m *Module) Collect(metrics chan<- prometheus.Metric) {
	m.writer.writes.Collect(metrics)
	m.writer.writeErrors.Collect(metrics)
}
