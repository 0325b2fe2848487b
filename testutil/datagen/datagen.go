package datagen

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AddRandomSeedsToFuzzer adds a number of random int64 seeds to the fuzzer corpus.
func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	r := rand.New(rand.NewSource(rand.Int63()))
	for i := uint(0); i < num; i++ {
		f.Add(r.Int63())
	}
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

func RandomMathInt(r *rand.Rand, rng int) math.Int {
	return math.NewIntFromUint64(RandomInt(r, rng))
}

// RandomInRange returns a random integer in the range [min, max).
func RandomInRange(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}

func GenRandomAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}
