package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/tutils/tprng/crypt/xor"
	"github.com/tutils/tprng/prng"
	"github.com/tutils/tprng/prng/constant"
	"github.com/tutils/tprng/prng/lcg"
	"github.com/tutils/tprng/prng/midsquare"
)

const (
	generatorLCG       = "lcg"
	generatorMidSquare = "midsquare"
	generatorConstant  = "constant"
)

// generatorNewers maps a generator name to its constructor. digits only
// matters for the middle-square method.
var generatorNewers = map[string]func(digits int) (prng.Generator, error){
	generatorLCG: func(int) (prng.Generator, error) {
		return lcg.New(), nil
	},
	generatorMidSquare: func(digits int) (prng.Generator, error) {
		return midsquare.New(midsquare.WithDigits(digits))
	},
	generatorConstant: func(int) (prng.Generator, error) {
		return constant.New(), nil
	},
}

func generatorNames() []string {
	names := make([]string, 0, len(generatorNewers))
	for name := range generatorNewers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newGenerator(name string, digits int) (prng.Generator, error) {
	newer, ok := generatorNewers[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q", name)
	}
	g, err := newer(digits)
	if err != nil {
		return nil, fmt.Errorf("%s generator: %w", name, err)
	}
	return g, nil
}

// configuredGenerator builds the generator selected by --generator and
// --digits.
func configuredGenerator() (prng.Generator, error) {
	return newGenerator(viper.GetString(keyGenerator), viper.GetInt(keyDigits))
}

// configuredNewer is configuredGenerator as a keystream constructor for the
// streaming crypt. The configuration is validated once, up front.
func configuredNewer() (xor.GeneratorNewer, error) {
	name, digits := viper.GetString(keyGenerator), viper.GetInt(keyDigits)
	if _, err := newGenerator(name, digits); err != nil {
		return nil, err
	}
	return func(seed uint64) prng.Generator {
		g, _ := newGenerator(name, digits)
		g.SetSeed(seed)
		return g
	}, nil
}
