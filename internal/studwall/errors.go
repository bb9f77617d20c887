package studwall

// ConfigError reports malformed input: a geometry or load value the
// accumulator cannot trust, or an empty candidate set. It aborts the whole
// wall calculation, since every story below a bad value would inherit the
// corruption. Design infeasibility is NOT a ConfigError; it is reported as
// data on the story result.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}
