// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

package decision

// EffectiveTemp applies a coarse wind-chill proxy to the raw temperature.
// Wind at or above the activation speed cools a sub-70°F temperature by one
// degree per full 3 mph above the activation speed. This is not a
// meteorological wind-chill model; the floor division and the inclusive wind
// threshold are load-bearing for output parity and must not be "fixed".
func EffectiveTemp(temp, windSpeed int) int {
	if windSpeed >= windChillActivation && temp < 70 {
		return temp - (windSpeed-windChillActivation)/3
	}
	return temp
}
