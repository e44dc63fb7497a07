package ports

// HapticIntensity grades a haptic pulse
type HapticIntensity string

const (
	HapticLight  HapticIntensity = "light"
	HapticMedium HapticIntensity = "medium"
	HapticHeavy  HapticIntensity = "heavy"
)

// HapticDriver fires tactile feedback pulses. On terminals this degrades
// to bell sequences; the dispatcher doesn't care.
type HapticDriver interface {
	Pulse(intensity HapticIntensity) error
}
