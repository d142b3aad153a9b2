package assets

import "fmt"

// maxSetNameLen bounds set names; they become directory names.
const maxSetNameLen = 64

// ValidateSetName accepts names made of ASCII letters, digits, '-' and '_'.
// Anything else, including dots and separators, returns ErrInvalidSetName.
func ValidateSetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidSetName)
	case len(name) > maxSetNameLen:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidSetName, maxSetNameLen)
	}
	for i := 0; i < len(name); i++ {
		if !isSetNameByte(name[i]) {
			return fmt.Errorf("%w: %q has %q at offset %d", ErrInvalidSetName, name, name[i], i)
		}
	}
	return nil
}

func isSetNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}
