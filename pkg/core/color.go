package core

// White and Black are the identity and zero colors for attenuation products
var (
	White = NewVec3(1, 1, 1)
	Black = NewVec3(0, 0, 0)
)

// ToColor converts an accumulated radiance sum to a packed 0x00RRGGBB pixel.
// The sum is averaged over numSamples, gamma corrected with a square root
// (gamma 2.0) and each channel clamped to [0, 0.999] before quantizing.
func ToColor(sum Vec3, numSamples int) uint32 {
	scale := 1.0 / float64(numSamples)
	c := sum.Multiply(scale).Sqrt().Clamp(0.0, 0.999)

	return uint32(256*c.X)<<16 | uint32(256*c.Y)<<8 | uint32(256*c.Z)
}

// ToRGB unpacks a 0x00RRGGBB pixel into red, green and blue bytes
func ToRGB(color uint32) [3]uint8 {
	return [3]uint8{
		uint8(color >> 16),
		uint8(color >> 8),
		uint8(color),
	}
}
