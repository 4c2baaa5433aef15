package ports

// Terminal describes the terminal that standard output is attached to.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type Terminal interface {
	// Width returns the width in cells, or zero when it is unknown.
	Width() int
}
