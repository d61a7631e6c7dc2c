package models

// PowerState is the power rail state of the discrete GPU as reported by bbswitch.
type PowerState int

const (
	PowerOff PowerState = iota
	PowerOn
)

// String returns the lowercase form printed by `nvctl power query`.
func (p PowerState) String() string {
	switch p {
	case PowerOn:
		return "on"
	default:
		return "off"
	}
}

// Token returns the literal bbswitch accepts on write.
func (p PowerState) Token() string {
	switch p {
	case PowerOn:
		return "ON"
	default:
		return "OFF"
	}
}

// GPU identifies which graphics processor prime-select has made active.
type GPU int

const (
	GPUIntel GPU = iota
	GPUNvidia
)

func (g GPU) String() string {
	switch g {
	case GPUNvidia:
		return "nvidia"
	default:
		return "intel"
	}
}

// ParseGPU maps a prime-select profile name to a GPU. Matching is exact, so
// "NVIDIA" or "on-demand" are rejected.
func ParseGPU(name string) (GPU, bool) {
	switch name {
	case "intel":
		return GPUIntel, true
	case "nvidia":
		return GPUNvidia, true
	default:
		return 0, false
	}
}
