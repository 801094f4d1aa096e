package profile

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"voiceconv/internal/services"
)

// ErrUnknownProfile is returned by Lookup for names outside the registry.
var ErrUnknownProfile = services.ErrUnknownProfile

// Format describes the stream properties a profile's output should carry.
type Format struct {
	Codec      string `json:"codec"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// Profile is one named set of transcoding parameters.
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Extension   string   `json:"extension"`
	Args        []string `json:"args"`
	Description string   `json:"description"`
	Expect      Format   `json:"expect"`
}

// IsZero reports whether p is the zero Profile.
func (p Profile) IsZero() bool {
	return p.ID == "" && p.Name == "" && p.Extension == "" && len(p.Args) == 0
}

// FormatLabel renders the expected output format, e.g. "pcm_mulaw 8000 Hz mono".
func (p Profile) FormatLabel() string {
	channels := fmt.Sprintf("%d ch", p.Expect.Channels)
	switch p.Expect.Channels {
	case 1:
		channels = "mono"
	case 2:
		channels = "stereo"
	}
	return fmt.Sprintf("%s %d Hz %s", p.Expect.Codec, p.Expect.SampleRate, channels)
}

func (p Profile) clone() Profile {
	p.Args = append([]string(nil), p.Args...)
	return p
}

// Registry is a read-only ordered set of profiles.
type Registry struct {
	profiles []Profile
	index    map[string]int
}

// NewRegistry validates the given profiles and indexes them by ID and name.
func NewRegistry(profiles ...Profile) (*Registry, error) {
	r := &Registry{
		profiles: make([]Profile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)*2),
	}
	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		for _, key := range []string{p.ID, p.Name} {
			folded := foldKey(key)
			if idx, exists := r.index[folded]; exists {
				if idx == len(r.profiles) {
					continue
				}
				return nil, fmt.Errorf("profile %q: duplicate key %q", p.Name, key)
			}
			r.index[folded] = len(r.profiles)
		}
		r.profiles = append(r.profiles, p.clone())
	}
	return r, nil
}

// Lookup returns the profile registered under name (ID or display name).
func (r *Registry) Lookup(name string) (Profile, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Profile{}, fmt.Errorf("%w: empty name", ErrUnknownProfile)
	}
	idx, ok := r.index[foldKey(trimmed)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProfile, trimmed, strings.Join(r.IDs(), ", "))
	}
	return r.profiles[idx].clone(), nil
}

// All returns every profile in registration order.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.clone())
	}
	return out
}

// Names returns the display names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.Name)
	}
	return out
}

// IDs returns the short IDs in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p.ID)
	}
	return out
}

// Default returns the first registered profile.
func (r *Registry) Default() Profile {
	if len(r.profiles) == 0 {
		return Profile{}
	}
	return r.profiles[0].clone()
}

// Casers are stateful; build one per call.
func foldKey(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}

func validateProfile(p Profile) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id must be set")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile %q: name must be set", p.ID)
	}
	if !strings.HasPrefix(p.Extension, ".") || len(p.Extension) < 2 {
		return fmt.Errorf("profile %q: extension %q must start with '.'", p.ID, p.Extension)
	}
	if len(p.Args) == 0 {
		return fmt.Errorf("profile %q: encoding arguments must not be empty", p.ID)
	}
	return nil
}
