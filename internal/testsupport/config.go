package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"voiceconv/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The output directory exists; the log directory is created only when file
// logging is enabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfgVal.Paths.OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir output dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLoudnorm toggles loudness normalization on the test config.
func WithLoudnorm(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transcoder.Loudnorm = enabled
	}
}

// WithDefaultProfile sets the profile used when none is requested.
func WithDefaultProfile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Defaults.Profile = name
	}
}

// WithFileLogging enables the rotating log file under the test log directory.
func WithFileLogging() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = true
		if err := os.MkdirAll(b.cfg.Paths.LogDir, 0o755); err != nil {
			b.t.Fatalf("mkdir log dir: %v", err)
		}
	}
}

// WithStubbedBinaries writes stub ffmpeg and ffprobe executables and prepends
// them to PATH. If names is empty, both are stubbed.
//
// The ffmpeg stub answers -version and otherwise writes "RIFF" to its last
// argument. VOICECONV_STUB_STDERR is echoed to stderr, a non-zero
// VOICECONV_STUB_EXIT becomes the exit status, and VOICECONV_STUB_ARGS_FILE
// receives the arguments one per line. The ffprobe stub reports a single audio
// stream described by VOICECONV_STUB_CODEC, VOICECONV_STUB_RATE, and
// VOICECONV_STUB_CHANNELS (pcm_s16le, 8000, 1 by default).
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg", "ffprobe"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		for _, name := range names {
			script, ok := stubScripts[name]
			if !ok {
				script = "#!/bin/sh\nexit 0\n"
			}
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

var stubScripts = map[string]string{
	"ffmpeg": `#!/bin/sh
case " $* " in
  *" -version "*)
    echo "ffmpeg version 6.1.1-stub Copyright (c) 2000-2023 the FFmpeg developers"
    exit 0
    ;;
esac
for last; do :; done
if [ -n "$VOICECONV_STUB_ARGS_FILE" ]; then
  printf '%s\n' "$@" > "$VOICECONV_STUB_ARGS_FILE"
fi
if [ -n "$VOICECONV_STUB_STDERR" ]; then
  printf '%s\n' "$VOICECONV_STUB_STDERR" >&2
fi
if [ -n "$VOICECONV_STUB_EXIT" ] && [ "$VOICECONV_STUB_EXIT" != "0" ]; then
  exit "$VOICECONV_STUB_EXIT"
fi
printf 'RIFF' > "$last"
`,
	"ffprobe": `#!/bin/sh
for last; do :; done
if [ ! -e "$last" ]; then
  echo "$last: No such file or directory" >&2
  exit 1
fi
cat <<JSON
{"streams":[{"index":0,"codec_type":"audio","codec_name":"${VOICECONV_STUB_CODEC:-pcm_s16le}","sample_rate":"${VOICECONV_STUB_RATE:-8000}","channels":${VOICECONV_STUB_CHANNELS:-1}}],"format":{"filename":"$last","format_name":"wav","duration":"1.250000","size":"20044","bit_rate":"128000"}}
JSON
`,
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
