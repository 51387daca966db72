package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ParseCredentials reads "correo:bcrypt-hash" pairs separated by commas or
// new lines. Blank entries and lines starting with # are skipped. Values that
// are not bcrypt hashes are rejected so plaintext passwords never get loaded.
func ParseCredentials(r io.Reader) (map[string]string, error) {
	credentials := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, entry := range strings.Split(line, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			correo, hash, ok := strings.Cut(entry, ":")
			correo = strings.ToLower(strings.TrimSpace(correo))
			hash = strings.TrimSpace(hash)
			if !ok || correo == "" || hash == "" {
				return nil, fmt.Errorf("invalid credential entry %q", entry)
			}
			if _, err := bcrypt.Cost([]byte(hash)); err != nil {
				return nil, fmt.Errorf("credential for %s is not a bcrypt hash: %w", correo, err)
			}
			credentials[correo] = hash
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return credentials, nil
}

// LoadCredentials merges ADMIN_CREDENTIALS and the file named by
// ADMIN_CREDENTIALS_FILE. File entries win on duplicates.
func (s *settings) LoadCredentials() (map[string]string, error) {
	credentials, err := ParseCredentials(strings.NewReader(s.ADMIN_CREDENTIALS))
	if err != nil {
		return nil, err
	}
	if s.ADMIN_CREDENTIALS_FILE != "" {
		file, err := os.Open(s.ADMIN_CREDENTIALS_FILE)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		fromFile, err := ParseCredentials(file)
		if err != nil {
			return nil, err
		}
		for correo, hash := range fromFile {
			credentials[correo] = hash
		}
	}
	if len(credentials) == 0 {
		return nil, fmt.Errorf("no admin credentials configured")
	}
	return credentials, nil
}
