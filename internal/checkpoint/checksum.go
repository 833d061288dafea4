package checkpoint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Checksum returns the hex SHA-256 of r.
func Checksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileChecksum returns the hex SHA-256 of the file at path.
func FileChecksum(path string) (string, error) {
	//nolint:gosec // G304: checkpoint path comes from the command line.
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return Checksum(f)
}

// VerifyFile compares the SHA-256 of the file at path against want.
// Returns ErrChecksumMismatch if they differ.
func VerifyFile(path, want string) error {
	got, err := FileChecksum(path)
	if err != nil {
		return err
	}
	if !strings.EqualFold(got, want) {
		return fmt.Errorf("%w: %s is %s, expected %s", ErrChecksumMismatch, path, got, want)
	}
	return nil
}
