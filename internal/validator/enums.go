package validator

import (
	"math"

	"github.com/shaban/bytewire/internal/schema"
)

// ValidateDiscriminants checks that every variant's discriminant fits in
// its enum's repr range and that no two variants of the same enum share a
// discriminant.
func ValidateDiscriminants(s *schema.Schema) []error {
	var errs []error

	for _, en := range s.Enums {
		min, max := discriminantRange(en.Repr)
		seen := make(map[int]bool)

		for _, v := range en.Variants {
			if v.Discriminant < min || v.Discriminant > max {
				errs = append(errs, errBadDiscriminant(en.Name, v.Name, v.Discriminant, en.Repr.String()))
				continue
			}
			if seen[v.Discriminant] {
				errs = append(errs, errDuplicateDiscriminant(en.Name, v.Discriminant))
			}
			seen[v.Discriminant] = true
		}
	}

	return errs
}

// discriminantRange reports the inclusive [min, max] that r's wire range
// admits. A Discriminant is parsed into a native int, so a repr whose true
// range does not fit in one (u64/u128/usize, i64/i128/isize) is bounded by
// int's own range instead: no literal the parser could have produced would
// ever exceed it anyway.
func discriminantRange(r schema.ReprKind) (int, int) {
	size := r.Size()
	if r.Signed() {
		if size >= 8 {
			return math.MinInt, math.MaxInt
		}
		bits := uint(8 * size)
		return -(1 << (bits - 1)), (1 << (bits - 1)) - 1
	}
	if size >= 8 {
		return 0, math.MaxInt
	}
	return 0, (1 << (8 * size)) - 1
}
