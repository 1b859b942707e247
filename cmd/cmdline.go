package cmd

import (
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/tutils/tprng/crypt/xor"
)

// A command line can be replayed as a single "@<token>" argument. The token
// is the gob-encoded argument list, XORed with a fixed-key LCG keystream and
// base64'd. The XOR only keeps the arguments from being readable at a
// glance.
var (
	cmdlineCrypt = xor.NewCrypt(33280939)
)

func encodeCmdline(args []string) (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawStdEncoding, w1)
	w3 := cmdlineCrypt.NewEncoder(w2)
	if err := gob.NewEncoder(w3).Encode(args); err != nil {
		return "", fmt.Errorf("encode cmdline: %w", err)
	}
	if err := w2.Close(); err != nil {
		return "", fmt.Errorf("encode cmdline: %w", err)
	}
	return w1.String(), nil
}

func decodeCmdline(s string) ([]string, error) {
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawStdEncoding, r1)
	r3 := cmdlineCrypt.NewDecoder(r2)
	var args []string
	if err := gob.NewDecoder(r3).Decode(&args); err != nil {
		return nil, fmt.Errorf("decode cmdline: %w", err)
	}
	return args, nil
}
