package main

// loadingState tracks which startup fetches are still outstanding.
type loadingState map[string]bool

func newLoadingState(keys ...string) loadingState {
	l := make(loadingState, len(keys))
	for _, k := range keys {
		l[k] = false
	}
	return l
}

// set marks the key as loaded
func (l loadingState) set(key string) {
	l[key] = true
}

// unset marks the key as pending again
func (l loadingState) unset(key string) {
	l[key] = false
}

// allLoaded reports whether every key has loaded, and if not,
// names one that has not.
func (l loadingState) allLoaded() (bool, string) {
	for k, v := range l {
		if !v {
			return false, k
		}
	}

	return true, ""
}
