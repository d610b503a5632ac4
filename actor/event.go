package actor

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Params is an ordered set of key/value pairs describing an event, used for logging.
type Params = orderedmap.OrderedMap[string, any]

// NewParams returns an empty Params.
func NewParams() *Params {
	return orderedmap.NewOrderedMap[string, any]()
}

// FormatParams renders params as "[k=v k=v]" in insertion order.
func FormatParams(params *Params) string {
	if params == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, key := range params.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		v, _ := params.Get(key)
		fmt.Fprintf(&b, "%s=%v", key, v)
	}
	b.WriteByte(']')
	return b.String()
}
