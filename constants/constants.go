package constants

const (
	// LogPrefixFmt pads service names so that interleaved log output from multiple services stays
	// column-aligned.
	LogPrefixFmt = "%-17s "
)
