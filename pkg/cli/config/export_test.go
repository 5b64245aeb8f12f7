package config

// NewMatchingForTest creates a Matching config for testing purposes
func NewMatchingForTest(maxPairs string, concurrency int) *Matching {
	return &Matching{
		maxPairs:    maxPairs,
		concurrency: concurrency,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
