package attr

// SetBool marks a boolean slot, failing if it is already set.
func SetBool(slot *bool, kind string) error {
	if *slot {
		return &Error{Err: ErrDuplicateAttribute, Kind: kind}
	}

	*slot = true

	return nil
}

// SetOption stores v into an empty slot, failing if the slot is occupied.
func SetOption[T any](slot **T, v T, kind string) error {
	if *slot != nil {
		return &Error{Err: ErrDuplicateAttribute, Kind: kind}
	}

	*slot = &v

	return nil
}
