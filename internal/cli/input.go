package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetDefaultedText reads a line like GetSimpleText but falls back to def when
// the user just presses Enter. Used by the edit commands to keep current
// values.
func GetDefaultedText(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, def), w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// GetInt reads a line and parses it as a base-10 integer.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	line, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

// GetYesNo reads a line and reports whether the answer starts with y or Y.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes", nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The returned byte slice should be wiped by the
// caller when no longer needed.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
