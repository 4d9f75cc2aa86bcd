package utils

// ToBool converts a stored integer flag to a bool.
// Only 0 is false; any other value, including rows edited outside this
// tool, counts as true.
func ToBool(stored int64) bool {
	return stored != 0
}

// ToPersisted converts a bool flag to the 0/1 integer stored in the database.
func ToPersisted(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
