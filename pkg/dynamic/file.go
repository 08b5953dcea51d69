package dynamic

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"
)

var osFs = afero.NewOsFs()

// Read opens the bound path, reads it to the end and closes it. Every line,
// including a final line without a terminator, is returned followed by a
// single "\n". Nothing is cached between calls.
//
// A path that cannot be opened or read fails with ErrIO.
func (f File) Read() (string, error) {
	return f.ReadFS(osFs)
}

// ReadFS is Read against fsys.
func (f File) ReadFS(fsys afero.Fs) (string, error) {
	fh, err := fsys.Open(f.Path)
	if err != nil {
		return "", WrapIO(err, "open %s", f.Path)
	}
	defer fh.Close()

	var sb strings.Builder
	r := bufio.NewReader(fh)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", WrapIO(err, "read %s", f.Path)
		}
	}
	return sb.String(), nil
}

// Read reads a File-tagged value. Other tags fail with ErrUnsupported.
func Read(v Value) (string, error) {
	f, ok := orDefault(v).(File)
	if !ok {
		return "", &OpError{Op: "read", Left: orDefault(v).Tag(), Kind: ErrUnsupported}
	}
	return f.Read()
}
