package usecase

// coalesce returns newVal unless it is empty, in which case def.
func coalesce[T ~string](newVal, def T) T {
	if newVal != "" {
		return newVal
	}
	return def
}

// pick returns *newVal when the caller sent it, the stored value otherwise.
func pick[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}
