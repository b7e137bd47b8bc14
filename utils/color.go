package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexColor parses a hex color string (like "#FACF24") into an integer
// for Discord embeds. The leading # is optional.
func ParseHexColor(hexColor string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if trimmed == "" {
		return 0, fmt.Errorf("empty color string")
	}

	colorInt, err := strconv.ParseInt(trimmed, 16, 64)
	if err != nil || colorInt > 0xFFFFFF {
		return 0, fmt.Errorf("'%s' is not a valid hex color", hexColor)
	}
	return int(colorInt), nil
}
