package convert

import (
	"context"
	"fmt"
	"strings"

	"voiceconv/internal/media/ffprobe"
	"voiceconv/internal/profile"
	"voiceconv/internal/services"
)

// Prober inspects a media file.
type Prober interface {
	Inspect(ctx context.Context, path string) (ffprobe.Result, error)
}

// FFprobe is a Prober backed by the ffprobe binary.
type FFprobe struct {
	Binary string
}

// Inspect runs ffprobe against path.
func (p FFprobe) Inspect(ctx context.Context, path string) (ffprobe.Result, error) {
	return ffprobe.Inspect(ctx, p.Binary, path)
}

// Verify probes outputPath and checks its first audio stream against the
// profile's expected codec, sample rate, and channel count. Mismatches are
// reported as services.ErrVerification.
func Verify(ctx context.Context, prober Prober, p profile.Profile, outputPath string) error {
	const op = "verify output"
	if prober == nil {
		return services.Fail(services.ErrVerification, op, "No media prober configured.")
	}
	result, err := prober.Inspect(ctx, outputPath)
	if err != nil {
		return services.FailWith(services.ErrVerification, op, fmt.Sprintf("Could not probe %s: %v", outputPath, err), err)
	}
	stream, ok := result.FirstAudio()
	if !ok {
		return services.Fail(services.ErrVerification, op, fmt.Sprintf("%s has no audio stream.", outputPath))
	}

	var problems []string
	if want := p.Expect.Codec; want != "" && !strings.EqualFold(stream.CodecName, want) {
		problems = append(problems, fmt.Sprintf("codec %s, want %s", stream.CodecName, want))
	}
	if want := p.Expect.SampleRate; want > 0 && stream.SampleRateHz() != want {
		problems = append(problems, fmt.Sprintf("sample rate %d Hz, want %d Hz", stream.SampleRateHz(), want))
	}
	if want := p.Expect.Channels; want > 0 && stream.Channels != want {
		problems = append(problems, fmt.Sprintf("%d channels, want %d", stream.Channels, want))
	}
	if len(problems) > 0 {
		return services.Fail(services.ErrVerification, op,
			fmt.Sprintf("%s does not match %s: %s.", outputPath, p.Name, strings.Join(problems, "; ")))
	}
	return nil
}
