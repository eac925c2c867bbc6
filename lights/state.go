package lights

// State describes the requested condition of a logical light, as supplied by
// the host on every set call. Color is a 32-bit ARGB-packed value. The flash
// and brightness-mode fields are carried along for the host's benefit but not
// interpreted by this module: the SC-02C hardware only offers on/off plus a
// single brightness channel.
type State struct {
	Color          uint32 `json:"color"`
	FlashMode      int    `json:"flashMode"`
	FlashOnMS      int    `json:"flashOnMS"`
	FlashOffMS     int    `json:"flashOffMS"`
	BrightnessMode int    `json:"brightnessMode"`
}

// Lit reports whether the state asks for the light to be on. The full 32-bit
// color is tested, including the alpha byte: 0xff000000 counts as lit even
// though its RGB portion is black. The touchkey driver has relied on this
// since the original CM7 builds, so the mask stays as is.
func (s State) Lit() bool {
	return s.Color != 0
}

// Brightness reduces the RGB portion of the color to a single luma level in
// [0,255], using the usual 77/150/29 perceptual weights. The alpha byte is
// masked off.
func (s State) Brightness() int {
	color := s.Color & 0x00ffffff
	return int((77*((color>>16)&0xff) + 150*((color>>8)&0xff) + 29*(color&0xff)) >> 8)
}
