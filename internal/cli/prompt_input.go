package cli

import (
	"fmt"
	"io"
	"strings"
)

// promptReader reads answers line by line. A line ends at LF or CR so Enter
// works in normal and raw terminal modes; a CRLF pair counts once.
type promptReader struct {
	in     io.Reader
	out    io.Writer
	lastCR bool
}

func newPromptReader(in io.Reader, out io.Writer) *promptReader {
	return &promptReader{in: in, out: out}
}

// Ask prints message and returns the trimmed answer.
func (p *promptReader) Ask(message string) (string, error) {
	if p.out != nil {
		fmt.Fprint(p.out, message)
	}
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

func (p *promptReader) readLine() (string, error) {
	if p.in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := p.in.Read(one[:])
		if n > 0 {
			c := one[0]
			if c == '\n' && p.lastCR && len(buf) == 0 {
				p.lastCR = false
				continue
			}
			p.lastCR = c == '\r'
			switch c {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, c)
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
