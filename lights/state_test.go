package lights_test

import (
	"testing"

	"github.com/sakuramilk/sc02c-liblights/lights"
	"github.com/stretchr/testify/assert"
)

func TestState_Lit(t *testing.T) {
	testCases := []struct {
		name  string
		color uint32
		lit   bool
	}{
		{name: "black", color: 0x00000000, lit: false},
		{name: "white", color: 0x00ffffff, lit: true},
		{name: "alpha only", color: 0xff000000, lit: true},
		{name: "opaque white", color: 0xffffffff, lit: true},
		{name: "single bit", color: 0x00000001, lit: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lit, lights.State{Color: tt.color}.Lit())
		})
	}
}

func TestState_Brightness(t *testing.T) {
	testCases := []struct {
		name       string
		color      uint32
		brightness int
	}{
		{name: "black", color: 0x00000000, brightness: 0},
		{name: "white", color: 0x00ffffff, brightness: 255},
		{name: "alpha masked off", color: 0xff000000, brightness: 0},
		{name: "red", color: 0x00ff0000, brightness: 76},
		{name: "green", color: 0x0000ff00, brightness: 149},
		{name: "blue", color: 0x000000ff, brightness: 28},
		{name: "opaque white", color: 0xffffffff, brightness: 255},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.brightness, lights.State{Color: tt.color}.Brightness())
		})
	}
}

func TestState_Brightness_Range(t *testing.T) {
	for color := uint32(0); color < 0x01000000; color += 0x000f1f3d {
		brightness := lights.State{Color: color}.Brightness()
		assert.GreaterOrEqual(t, brightness, 0)
		assert.LessOrEqual(t, brightness, 255)
	}
}
