// Package validation holds the pure input predicates used as
// preconditions by the repository and service layers. They operate on
// pointers so that "absent" and "present" survive JSON decoding.
package validation

// IsValidInt reports whether v carries a usable integer value.
func IsValidInt(v *int) bool {
	return v != nil
}

// IsValidID reports whether id refers to a storage-generated
// identifier. Zero is never a valid id.
func IsValidID(id uint) bool {
	return id != 0
}

// IsValidIDs reports whether ids is non-empty and every member is a
// valid id.
func IsValidIDs(ids []uint) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !IsValidID(id) {
			return false
		}
	}
	return true
}

// IsValidString reports whether s is present with at least minLen
// characters. minLen below 1 means 1.
func IsValidString(s *string, minLen int) bool {
	if minLen < 1 {
		minLen = 1
	}
	return s != nil && len(*s) >= minLen
}
