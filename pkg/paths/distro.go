package paths

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotm/pkg/errors"
)

// DefaultDistro is used when os-release has no ID field
const DefaultDistro = "linux"

// OSReleasePath is read by DistroID
var OSReleasePath = "/etc/os-release"

// DistroID reads the ID field of os-release
func DistroID() (string, error) {
	f, err := os.Open(OSReleasePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "Failed to open `%s`", OSReleasePath)
	}
	defer func() { _ = f.Close() }()

	return ParseDistroID(f)
}

// ParseDistroID scans os-release formatted input for the ID field
func ParseDistroID(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.Trim(strings.TrimSpace(line[len("ID="):]), `"'`)
		if id != "" {
			return id, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "Failed to read `%s`", OSReleasePath)
	}
	return DefaultDistro, nil
}
