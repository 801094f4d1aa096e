package profile

const (
	// APXWAV is the ID of the APX CPS-ready WAV profile.
	APXWAV = "apx-wav"
	// MotoTRBOMVA is the ID of the MOTOTRBO .mva profile.
	MotoTRBOMVA = "mototrbo-mva"
)

var builtin = mustRegistry(
	Profile{
		ID:        APXWAV,
		Name:      "APX CPS-ready WAV (8 kHz, 16-bit PCM, mono)",
		Extension: ".wav",
		Args:      []string{"-c:a", "pcm_s16le", "-ar", "8000", "-ac", "1"},
		Description: "Use this for APX: import/convert inside CPS via " +
			"Tools → VA Converter Utility.",
		Expect: Format{Codec: "pcm_s16le", SampleRate: 8000, Channels: 1},
	},
	Profile{
		ID:        MotoTRBOMVA,
		Name:      "MOTOTRBO MVA (legacy CPS safe)",
		Extension: ".mva",
		Args: []string{
			"-ar", "8000",
			"-ac", "1",
			"-c:a", "pcm_mulaw",
			"-map_metadata", "-1",
			"-fflags", "+bitexact",
			"-flags:a", "+bitexact",
			"-f", "wav",
		},
		Description: "Legacy MOTOTRBO CPS-safe μ-law MVA (no metadata, no filters).",
		Expect:      Format{Codec: "pcm_mulaw", SampleRate: 8000, Channels: 1},
	},
)

func mustRegistry(profiles ...Profile) *Registry {
	r, err := NewRegistry(profiles...)
	if err != nil {
		panic(err)
	}
	return r
}

// Builtin returns the process-wide registry of shipped profiles.
func Builtin() *Registry {
	return builtin
}

// Lookup resolves name against the built-in registry.
func Lookup(name string) (Profile, error) {
	return builtin.Lookup(name)
}

// All returns the built-in profiles in display order.
func All() []Profile {
	return builtin.All()
}

// Names returns the built-in profile display names.
func Names() []string {
	return builtin.Names()
}

// Default returns the built-in default profile (APX WAV).
func Default() Profile {
	return builtin.Default()
}
