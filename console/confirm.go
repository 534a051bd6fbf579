package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm asks a y/n question on stdout and reads the answer from stdin.
func Confirm(prompt string) bool {
	return ConfirmFrom(prompt, os.Stdin)
}

func ConfirmFrom(prompt string, r io.Reader) bool {
	fmt.Printf("%s [y/n]: ", prompt)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes"
}
