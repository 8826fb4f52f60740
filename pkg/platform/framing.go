package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrFramingOutOfRange is returned when bracing or legs type falls
	// outside the framing table.
	ErrFramingOutOfRange = errors.New("framing index out of range")

	// ErrMissingInstallationDate is returned by age-based lookups when the
	// platform has no installation date.
	ErrMissingInstallationDate = errors.New("installation date not recorded")
)

// framingTable is indexed by [bracing type - 1][number of legs type - 1].
var framingTable = [3][5]int{
	{10, 10, 8, 6, 4},
	{10, 7, 5, 4, 3},
	{6, 5, 4, 3, 2},
}

// FramingScore looks up the framing severity (2-10) for a bracing type (1-3)
// and number-of-legs type (1-5).
func FramingScore(bracingType, legsType int) (int, error) {
	if bracingType < 1 || bracingType > len(framingTable) {
		return 0, fmt.Errorf("bracing type %d: %w", bracingType, ErrFramingOutOfRange)
	}
	if legsType < 1 || legsType > len(framingTable[0]) {
		return 0, fmt.Errorf("number of legs type %d: %w", legsType, ErrFramingOutOfRange)
	}
	return framingTable[bracingType-1][legsType-1], nil
}

// FramingScore returns the framing severity for this platform.
func (p *Platform) FramingScore() (int, error) {
	return FramingScore(p.BracingType, p.NumberOfLegsType)
}

// VintageYear is the year used as the platform's age proxy: the design year,
// or two years before installation when no design date is recorded.
func (p *Platform) VintageYear() (int, error) {
	if p.DesignDate != nil {
		return p.DesignDate.Year(), nil
	}
	if p.InstallationDate == nil {
		return 0, ErrMissingInstallationDate
	}
	return p.InstallationDate.Year() - 2, nil
}
