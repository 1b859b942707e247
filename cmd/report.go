package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/tutils/tprng/crypt/xor"
	"github.com/tutils/tprng/dice"
)

const rule = "------------------------------"

func printDice(w io.Writer, result dice.Result) {
	fmt.Fprintf(w, "Rolling the dice %d times\n", len(result.Rolls))
	fmt.Fprintln(w, result.Rolls)
	fmt.Fprintf(w, "Mean: %v\n", result.Mean)
	fmt.Fprintf(w, "Stdev: %v\n", result.StdDev)
}

func printTrial(w io.Writer, trial xor.Trial) {
	fmt.Fprintf(w, "Key: %d\n", trial.Key)
	fmt.Fprintf(w, "Plaintext  : %s\n", displayText(w, trial.Plaintext))
	fmt.Fprintf(w, "Cipher text: %s\n", displayText(w, trial.Ciphertext))
	fmt.Fprintf(w, "Decyphered text: %s\n", displayText(w, trial.Decrypted))
	fmt.Fprintf(w, "Incorrectly Decyphered text (key %d): %s\n", trial.WrongKey, displayText(w, trial.WrongKeyDecrypted))
}

// displayText quotes s so ciphertext control bytes cannot drive a terminal.
// Other writers get the raw bytes between single quotes.
func displayText(w io.Writer, s string) string {
	if isTerminal(w) {
		return strconv.QuoteToASCII(s)
	}
	return "'" + s + "'"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
