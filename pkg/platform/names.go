// SPDX-License-Identifier: MPL-2.0

package platform

import "strings"

// IsReservedFileName reports whether name (ignoring case and any extension)
// is a device name Windows refuses as a file name: CON, PRN, AUX, NUL,
// COM1-COM9 or LPT1-LPT9.
func IsReservedFileName(name string) bool {
	base := strings.ToUpper(name)
	if idx := strings.IndexByte(base, '.'); idx != -1 {
		base = base[:idx]
	}

	switch base {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(base) == 4 && (strings.HasPrefix(base, "COM") || strings.HasPrefix(base, "LPT")) {
		return base[3] >= '1' && base[3] <= '9'
	}
	return false
}
