package world

import "github.com/zeebo/xxh3"

// HandleFromName derives a stable handle from a name, so that level data can refer to
// bodies by name across runs.
func HandleFromName(name string) Handle {
	h := Handle(xxh3.HashString(name))
	if h == NoHandle {
		h++
	}
	return h
}
