package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formats an uint value into a fixed width binary string of n bits
func FormatUintBinary(value uint64, bits int) string {
	return padZeros(strconv.FormatUint(value, 2), bits)
}

// Formats an uint value into an fixed width hex string of n characters
func FormatUintHex(value uint64, digits int) string {
	return "0x" + padZeros(strconv.FormatUint(value, 16), digits)
}

func padZeros(digits string, length int) string {
	return strings.Repeat("0", max(length-len(digits), 0)) + digits
}

// Returns the number of hex digits needed to print a value of the given bit width
func HexDigits(bits int) int {
	return (bits + 3) / 4
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}

// Parses an unsigned integer literal. Accepts 0x, 0b and 0o prefixes and '_' digit separators
func ParseUint(literal string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(literal), 0, bits)
}
