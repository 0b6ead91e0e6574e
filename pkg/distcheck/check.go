// Package distcheck verifies the integrity of the session server binary
// against an expected checksum.
package distcheck

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/DataScienceMom/hue/pkg/check"
)

// FileOpener abstracts file operations for testability.
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileOpener implements FileOpener using the real filesystem.
type RealFileOpener struct{}

func (r *RealFileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: path comes from the resolved install root
}

// Algorithm represents supported checksum algorithms.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// NewHasher returns a hasher for the algorithm. SHA256 is the default.
func (a Algorithm) NewHasher() hash.Hash {
	if a == AlgorithmBLAKE3 {
		return blake3.New()
	}
	return sha256.New()
}

// Both algorithms produce 256-bit digests.
const expectedHexLength = 64

// Check verifies the server binary's checksum against an expected hash.
type Check struct {
	File         string
	ExpectedHash string
	Algorithm    Algorithm
	ChecksumFile string // overrides ExpectedHash/Algorithm when set
	Opener       FileOpener
}

// Run executes the integrity check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("dist: %s", c.File),
	}

	opener := c.Opener
	if opener == nil {
		opener = &RealFileOpener{}
	}

	algorithm := c.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmSHA256
	}

	expected := c.ExpectedHash
	if c.ChecksumFile != "" {
		var err error
		expected, algorithm, err = c.parseChecksumFile(opener, algorithm)
		if err != nil {
			return result.Failf("%v", err)
		}
	}

	if expected == "" {
		return result.Failf("expected hash is required (use --sha256, --blake3, or --checksum-file)")
	}

	expected = strings.ToLower(expected)
	if err := validateHash(expected); err != nil {
		return result.Failf("invalid hash: %v", err)
	}

	f, err := opener.Open(c.File)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Failf("file not found")
		}
		return result.Failf("failed to open file: %v", err)
	}
	defer func() { _ = f.Close() }()

	h := algorithm.NewHasher()
	if _, err := io.Copy(h, f); err != nil {
		return result.Failf("failed to compute hash: %v", err)
	}
	actual := hex.EncodeToString(h.Sum(nil))

	if actual != expected {
		return result.Failf("%s mismatch\n       expected: %s\n       actual:   %s", algorithm, expected, actual)
	}

	result.Status = check.StatusOK
	result.AddDetailf("algorithm: %s", algorithm)
	result.AddDetailf("hash: %s", actual)
	return result
}

func validateHash(hashStr string) error {
	if _, err := hex.DecodeString(hashStr); err != nil {
		return fmt.Errorf("not valid hexadecimal")
	}
	if len(hashStr) != expectedHexLength {
		return fmt.Errorf("expected %d characters, got %d", expectedHexLength, len(hashStr))
	}
	return nil
}

var bsdFormatRegex = regexp.MustCompile(`^(SHA256|BLAKE3)\s+\((.+)\)\s*=\s*([a-fA-F0-9]+)$`)

// parseChecksumFile finds the server binary's entry in a checksum file.
// BSD-style lines (`SHA256 (livy-server) = <hex>`) name their algorithm;
// GNU-style lines (`<hex>  livy-server`) carry none, so both digests being
// 64 hex characters the fallback algorithm applies.
func (c *Check) parseChecksumFile(opener FileOpener, fallback Algorithm) (string, Algorithm, error) {
	f, err := opener.Open(c.ChecksumFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to open checksum file: %v", err)
	}
	defer func() { _ = f.Close() }()

	target := filepath.Base(c.File)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if matches := bsdFormatRegex.FindStringSubmatch(line); matches != nil {
			if matches[2] != target && matches[2] != c.File {
				continue
			}
			algorithm := AlgorithmSHA256
			if matches[1] == "BLAKE3" {
				algorithm = AlgorithmBLAKE3
			}
			return matches[3], algorithm, nil
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimPrefix(parts[len(parts)-1], "*")
		if name == target || name == c.File {
			return parts[0], fallback, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", "", fmt.Errorf("error reading checksum file: %v", err)
	}

	return "", "", fmt.Errorf("file %q not found in checksum file", target)
}
