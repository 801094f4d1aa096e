package config

import "voiceconv/internal/profile"

const (
	defaultConfigPath     = "~/.config/voiceconv/config.toml"
	defaultOutputDir      = "."
	defaultLogDir         = "~/.local/share/voiceconv/logs"
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"
	defaultLoudnormFilter = "loudnorm=I=-16:TP=-4:LRA=11"
	defaultBaseName       = "voice_announcement"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 3
	defaultLogMaxAgeDays  = 30
)

// DefaultLoudnormFilter is the FFmpeg -af value applied before every profile.
const DefaultLoudnormFilter = defaultLoudnormFilter

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Transcoder: Transcoder{
			FFmpegBinary:   defaultFFmpegBinary,
			FFprobeBinary:  defaultFFprobeBinary,
			Loudnorm:       true,
			LoudnormFilter: defaultLoudnormFilter,
		},
		Defaults: Defaults{
			Profile:  profile.APXWAV,
			BaseName: defaultBaseName,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
