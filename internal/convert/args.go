package convert

// BuildArgs assembles the FFmpeg argument list for one conversion. The
// normalization arguments always sit directly before the profile arguments.
func BuildArgs(input, output string, normalization, profileArgs []string) []string {
	args := make([]string, 0, 7+len(normalization)+len(profileArgs))
	args = append(args, "-y", "-hide_banner", "-loglevel", "error", "-i", input)
	args = append(args, normalization...)
	args = append(args, profileArgs...)
	args = append(args, output)
	return args
}

// NormalizationArgs returns the -af arguments for filter, or nil when filter
// is empty.
func NormalizationArgs(filter string) []string {
	if filter == "" {
		return nil
	}
	return []string{"-af", filter}
}
