package term

import "strconv"

// Level is a universe level in the predicative tower. Sort(n) lives in
// Sort(n+1); terms whose type is Prop contribute BottomLevel, the
// impredicative floor of the hierarchy.
type Level uint32

// BottomLevel is the distinguished level of propositions.
const BottomLevel Level = 0

// Succ returns the next level up.
func (l Level) Succ() Level { return l + 1 }

// Max returns the larger of the two levels.
func (l Level) Max(other Level) Level {
	if other > l {
		return other
	}
	return l
}

func (l Level) String() string { return strconv.FormatUint(uint64(l), 10) }
