//go:build !unix

package stderr

import "os"

// Start does nothing where descriptors cannot be duplicated.
func Start(func(line string)) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing.
func Stop() {}
