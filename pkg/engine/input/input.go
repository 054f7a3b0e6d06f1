package input

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strings"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin, lower-cased and trimmed.
// End of input reads as "quit".
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return readLine(stdinReader)
}

func readLine(r *bufio.Reader) string {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "quit"
	}
	if err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}
	return strings.ToLower(strings.TrimSpace(line))
}
