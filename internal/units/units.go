// SPDX-FileCopyrightText: The jacketcheck authors
//
// SPDX-License-Identifier: MIT

// Package units provides temperature conversions between Fahrenheit and Celsius.
// Fahrenheit is the internal source of truth everywhere in jacketcheck; Celsius
// is a presentation-only derived view.
package units

import "math"

// ToCelsius converts a Fahrenheit temperature to rounded Celsius.
func ToCelsius(fahrenheit int) int {
	return int(math.Round(float64(fahrenheit-32) * 5 / 9))
}

// ToFahrenheit converts a Celsius temperature to rounded Fahrenheit.
func ToFahrenheit(celsius int) int {
	return int(math.Round(float64(celsius)*9/5 + 32))
}
