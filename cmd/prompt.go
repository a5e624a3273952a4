package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tanq16/pullr/internal/output"
)

var errAborted = errors.New("aborted by user")

// confirmURL lets http(s) URLs through and asks before continuing with
// anything else. No readable answer counts as a no.
func confirmURL(in io.Reader, out io.Writer, rawURL string) error {
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return nil
	}
	fmt.Fprint(out, output.FPrompt(fmt.Sprintf("The url %s is not supported. Do you want to continue? ", rawURL)))
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(out)
		return errAborted
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errAborted
	}
}
