package stats

import (
	"fmt"
	"math"
	"strconv"
)

const sizeUnits = "KMGTPE"

// HumanSize formats a byte count the way `ls -lh` does: plain bytes below 1024,
// one decimal below ten units, whole units above, always rounding up.
func HumanSize(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(max(n, 0), 10)
	}

	v := float64(n)
	i := -1
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}

	if v < 10 {
		r := math.Ceil(v*10) / 10
		if r < 10 {
			return fmt.Sprintf("%.1f%c", r, sizeUnits[i])
		}
		v = r
	}

	r := math.Ceil(v)
	if r >= 1024 && i < len(sizeUnits)-1 {
		return fmt.Sprintf("1.0%c", sizeUnits[i+1])
	}
	return fmt.Sprintf("%d%c", int64(r), sizeUnits[i])
}
