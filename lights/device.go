package lights

// Device is a handle on one logical light, handed to the host by Open. Each
// Open call produces a fresh handle; handles are not pooled or reused.
type Device struct {
	name string
	set  func(State) error
}

// Name returns the logical device name the handle was opened with.
func (d *Device) Name() string {
	return d.name
}

// Set applies the requested state to the underlying light.
func (d *Device) Set(state State) error {
	if d == nil || d.set == nil {
		return ErrDeviceClosed
	}
	return d.set(state)
}

// Close releases the handle. Further Set calls on the device fail with
// ErrDeviceClosed. Closing a nil or already closed device is a no-op, and
// shared module state is not reset: the lights keep whatever the last write
// left them at.
func (d *Device) Close() error {
	if d != nil {
		d.set = nil
	}
	return nil
}
