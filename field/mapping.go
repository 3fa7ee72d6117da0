package field

// Mapping converts the UI slider range into the internal warp-speed
// range. The slider stays gentle (1-5 by default) while the simulation
// wants a wider dynamic range (1-11) for visible trail variation.
type Mapping struct {
	SliderMin float32
	SliderMax float32
	Step      float32
	SpeedMin  float32
	SpeedMax  float32
}

// Quantize snaps a raw slider value to the configured step and clamps it
// to the slider range.
func (m Mapping) Quantize(v float32) float32 {
	if v < m.SliderMin {
		v = m.SliderMin
	}
	if v > m.SliderMax {
		v = m.SliderMax
	}
	if m.Step <= 0 {
		return v
	}
	steps := int((v-m.SliderMin)/m.Step + 0.5)
	v = m.SliderMin + float32(steps)*m.Step
	if v > m.SliderMax {
		v = m.SliderMax
	}
	return v
}

// Speed maps a slider value linearly into the warp-speed range.
// With the default ranges: 1 -> 1, 3 -> 6, 5 -> 11.
func (m Mapping) Speed(v float32) float32 {
	t := (v - m.SliderMin) / (m.SliderMax - m.SliderMin)
	return m.SpeedMin + t*(m.SpeedMax-m.SpeedMin)
}
