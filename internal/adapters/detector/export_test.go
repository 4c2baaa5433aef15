// export_test.go exports private constructors for white-box testing.
package detector

// NewTerminalForTest builds a Terminal with injected environment and terminal lookups.
func NewTerminalForTest(
	env map[string]string,
	isTerminal func(int) bool,
	getSize func(int) (int, int, error),
) *Terminal {
	return &Terminal{
		fd: 1,
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		isTerminal: isTerminal,
		getSize:    getSize,
	}
}
