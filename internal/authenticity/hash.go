package authenticity

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// DocumentHash returns the hex SHA-256 of the file contents, read in 4KB
// chunks so large scans never land in memory whole.
func DocumentHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, 4096)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
