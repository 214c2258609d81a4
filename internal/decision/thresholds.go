// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

const (
	// significantDropDelta is the six-hour temperature drop (°F) that counts
	// as significant.
	significantDropDelta = 10
	// windChillActivation is the wind speed (mph) at which wind chill starts
	// to affect the effective temperature.
	windChillActivation = 5
	// highWindSpeed is the wind speed (mph) at which conditions count as windy.
	highWindSpeed = 15
)

// ThresholdSet holds the four jacket boundary cut points in °F. A temperature
// below Heavy calls for a heavy jacket, below Medium for a medium jacket,
// below Light for a light jacket and at or above None for no jacket at all.
type ThresholdSet struct {
	None   int
	Light  int
	Medium int
	Heavy  int
}

// BaseThresholds returns the fixed base cut points before any regional or
// seasonal adjustment. Medium and Heavy deliberately share a cut point; the
// medium tier only separates once they are adjusted independently, which the
// current model never does.
func BaseThresholds() ThresholdSet {
	return ThresholdSet{
		None:   75,
		Light:  60,
		Medium: 45,
		Heavy:  45,
	}
}

// Adjusted returns the threshold set with all four cut points shifted
// uniformly by the given bias. A positive bias raises the cut points: the
// region or recent period runs colder, so a higher raw temperature still
// warrants a jacket. The auxiliary constants are never shifted.
func (t ThresholdSet) Adjusted(bias int) ThresholdSet {
	return ThresholdSet{
		None:   t.None + bias,
		Light:  t.Light + bias,
		Medium: t.Medium + bias,
		Heavy:  t.Heavy + bias,
	}
}
