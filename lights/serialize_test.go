package lights

import (
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type trackedFile struct {
	active *int32
}

func (f trackedFile) Write(p []byte) (int, error) {
	time.Sleep(time.Millisecond)
	return len(p), nil
}

func (f trackedFile) Close() error {
	atomic.AddInt32(f.active, -1)
	return nil
}

// Writes from different devices must never interleave: the module's single
// lock serializes all set operations.
func TestModule_SerializesDevices(t *testing.T) {
	m := New(DefaultPaths())

	var active, overlaps int32
	m.writer.open = func(string) (io.WriteCloser, error) {
		if atomic.AddInt32(&active, 1) != 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		return trackedFile{active: &active}, nil
	}

	backlight, _ := m.Open(Backlight)
	buttons, _ := m.Open(Buttons)
	notifications, _ := m.Open(Notifications)

	var wg sync.WaitGroup
	for _, device := range []*Device{backlight, buttons, notifications} {
		wg.Add(1)
		go func(device *Device) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = device.Set(State{Color: 0x00ffffff})
				_ = device.Set(State{})
			}
		}(device)
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlaps))
}
