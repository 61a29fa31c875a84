package doris

import (
	"fmt"
	"math"
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// Int128 is a signed 128-bit integer in two's complement, split into a signed
// high word and an unsigned low word. It backs Int128 columns and the unscaled
// value of decimals, and shares its layout with decimal128.Num.
type Int128 struct {
	Hi int64
	Lo uint64
}

// MinInt128 is -2^127. It has no positive counterpart, so it is never produced
// by Int128FromBig.
var MinInt128 = Int128{Hi: math.MinInt64}

var minInt128Big = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

// Int128FromInt64 sign-extends v.
func Int128FromInt64(v int64) Int128 {
	return Int128FromNum(decimal128.FromI64(v))
}

// Int128FromNum converts an arrow decimal128 value.
func Int128FromNum(n decimal128.Num) Int128 {
	return Int128{Hi: n.HighBits(), Lo: n.LowBits()}
}

// Int128FromBig converts b, failing unless |b| < 2^127.
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.BitLen() > 127 {
		return Int128{}, fmt.Errorf("%s overflows Int128", b.String())
	}
	return Int128FromNum(decimal128.FromBigInt(b)), nil
}

// Num returns v as an arrow decimal128 value.
func (v Int128) Num() decimal128.Num {
	return decimal128.New(v.Hi, v.Lo)
}

// Big returns v as a big.Int.
func (v Int128) Big() *big.Int {
	if v == MinInt128 {
		return new(big.Int).Set(minInt128Big)
	}
	return v.Num().BigInt()
}

func (v Int128) String() string {
	return v.Big().String()
}
