package cbv

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates mission identifiers outside their valid range.
var ErrInvalidConfig = errors.New("cbv: invalid mission config")

// Mission identifies the survey a basis-vector table belongs to.
type Mission int

const (
	// MissionKepler is the prime Kepler mission (quarter/module/output).
	MissionKepler Mission = iota
	// MissionK2 is the extended K2 mission (campaign/channel).
	MissionK2
	// MissionTESS is TESS (sector/camera/CCD).
	MissionTESS
)

// String returns the canonical mission name.
func (m Mission) String() string {
	switch m {
	case MissionKepler:
		return "Kepler"
	case MissionK2:
		return "K2"
	case MissionTESS:
		return "TESS"
	default:
		return "Unknown"
	}
}

// Config pins a basis-vector table to its origin on the focal plane.
// Which fields apply depends on Mission: Quarter/Module/Output for Kepler,
// Campaign/Channel for K2, Sector/Camera/CCD for TESS. The zero value is
// "unspecified" and passes validation for any mission field left at zero.
type Config struct {
	Mission Mission

	Quarter int
	Module  int
	Output  int

	Campaign int
	Channel  int

	Sector int
	Camera int
	CCD    int
}

// Validate checks that the identifiers set for the configured mission fall
// in their documented ranges. Zero-valued fields are treated as
// unspecified and skipped.
func (c Config) Validate() error {
	check := func(name string, v, lo, hi int) error {
		if v != 0 && (v < lo || v > hi) {
			return fmt.Errorf("%w: %s %s=%d outside [%d, %d]", ErrInvalidConfig, c.Mission, name, v, lo, hi)
		}

		return nil
	}

	switch c.Mission {
	case MissionKepler:
		for _, f := range []struct {
			name   string
			v      int
			lo, hi int
		}{
			{"quarter", c.Quarter, 1, 17},
			{"module", c.Module, 2, 24},
			{"output", c.Output, 1, 4},
		} {
			if err := check(f.name, f.v, f.lo, f.hi); err != nil {
				return err
			}
		}
	case MissionK2:
		for _, f := range []struct {
			name   string
			v      int
			lo, hi int
		}{
			{"campaign", c.Campaign, 1, 19},
			{"channel", c.Channel, 1, 84},
		} {
			if err := check(f.name, f.v, f.lo, f.hi); err != nil {
				return err
			}
		}
	case MissionTESS:
		for _, f := range []struct {
			name   string
			v      int
			lo, hi int
		}{
			{"sector", c.Sector, 1, 99},
			{"camera", c.Camera, 1, 4},
			{"ccd", c.CCD, 1, 4},
		} {
			if err := check(f.name, f.v, f.lo, f.hi); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: unknown mission %d", ErrInvalidConfig, int(c.Mission))
	}

	return nil
}

// String renders the mission identifiers in archive notation, e.g.
// "Kepler q4 mod13 out2" or "TESS s0011 cam2 ccd3".
func (c Config) String() string {
	switch c.Mission {
	case MissionKepler:
		return fmt.Sprintf("Kepler q%d mod%d out%d", c.Quarter, c.Module, c.Output)
	case MissionK2:
		return fmt.Sprintf("K2 c%02d ch%d", c.Campaign, c.Channel)
	case MissionTESS:
		return fmt.Sprintf("TESS s%04d cam%d ccd%d", c.Sector, c.Camera, c.CCD)
	default:
		return "Unknown"
	}
}

// Convention describes how a mission indexes its cadences and basis
// vectors, for display and tooling.
type Convention struct {
	Mission     Mission
	Identifiers string
	CadenceSec  float64
	Notes       string
}

// Conventions returns the per-mission cadence conventions, ordered by
// mission launch date.
func Conventions() []Convention {
	return []Convention{
		{
			Mission:     MissionKepler,
			Identifiers: "quarter/module/output",
			CadenceSec:  1765.5,
			Notes:       "long cadence; 16 basis vectors per channel",
		},
		{
			Mission:     MissionK2,
			Identifiers: "campaign/channel",
			CadenceSec:  1765.5,
			Notes:       "long cadence; pointing drift dominates systematics",
		},
		{
			Mission:     MissionTESS,
			Identifiers: "sector/camera/CCD",
			CadenceSec:  120,
			Notes:       "two-minute cadence; single-scale and multi-scale sets",
		},
	}
}
