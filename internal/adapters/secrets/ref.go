// Package secrets holds the secret-store backends and the reference format they share.
package secrets

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// EntryPath turns a "scheme://a/b" reference into the relative entry "scheme/a/b". References
// without a scheme are used as-is. Absolute and escaping paths are rejected.
func EntryPath(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", errors.New("secret key is empty")
	}

	if scheme, rest, ok := strings.Cut(trimmed, "://"); ok {
		if scheme == "" || rest == "" {
			return "", fmt.Errorf("invalid secret key %q", ref)
		}
		trimmed = scheme + "/" + rest
	}

	if strings.HasPrefix(trimmed, "/") {
		return "", fmt.Errorf("invalid secret key %q", ref)
	}
	cleaned := path.Clean(trimmed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("invalid secret key %q", ref)
	}

	return cleaned, nil
}
