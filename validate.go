package fracindex

// Valid reports whether value is a well-formed position: non-empty and
// drawn entirely from the alphabet. It never panics and degrades to false
// for any malformed input, so it is safe as a pre-flight guard on
// externally supplied or previously persisted values.
func Valid(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if symbolIndex[value[i]] < 0 {
			return false
		}
	}
	return true
}
