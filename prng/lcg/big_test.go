package lcg

import "math/big"

// bigMod evaluates the recurrence with unbounded integers.
type bigMod struct{}

func (bigMod) step(seed uint64) uint64 {
	v := new(big.Int).SetUint64(seed)
	v.Mul(v, big.NewInt(Multiplier))
	v.Add(v, big.NewInt(Increment))
	v.Mod(v, new(big.Int).Lsh(big.NewInt(1), 32))
	return v.Uint64()
}
