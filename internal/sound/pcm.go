package sound

import (
	"math"

	"github.com/gopxl/beep"
)

// Render synthesizes an effect into signed 16-bit little-endian stereo PCM,
// the format expected by byte-oriented audio backends.
func Render(e Effect, rate beep.SampleRate, volume float64) []byte {
	s := Create(e, rate, volume)
	if s == nil {
		return nil
	}

	var out []byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Round(clampSample(samples[i][ch]) * math.MaxInt16))
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			break
		}
	}
	return out
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
