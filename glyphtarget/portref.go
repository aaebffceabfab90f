package glyphtarget

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type PortKind string

const (
	// PortByID addresses an explicit port by its id.
	PortByID PortKind = ""

	PortKindInput     PortKind = "input"
	PortKindOutput    PortKind = "output"
	PortKindAttribute PortKind = "attribute"

	// PortKindPositional is the index into a glyph's combined slot list
	// (inputs, outputs, then attribute ports). Older documents stored it
	// as a bare number.
	PortKindPositional PortKind = "positional"
)

// PortRef identifies one port of a glyph. It is either an id, an index
// within one kind of slot, or a positional index into every slot.
type PortRef struct {
	ID    string
	Kind  PortKind
	Index int
}

func PortID(id string) PortRef {
	return PortRef{ID: id}
}

func PortAt(kind PortKind, index int) PortRef {
	return PortRef{Kind: kind, Index: index}
}

func Positional(index int) PortRef {
	return PortRef{Kind: PortKindPositional, Index: index}
}

func (r PortRef) IsZero() bool {
	return r == PortRef{}
}

func (r PortRef) IsByID() bool {
	return r.Kind == PortByID
}

func (r PortRef) String() string {
	switch r.Kind {
	case PortByID:
		return r.ID
	case PortKindPositional:
		return strconv.Itoa(r.Index)
	default:
		return fmt.Sprintf("%s:%d", r.Kind, r.Index)
	}
}

// ParsePortRef parses the persisted string form: "output:0" style
// references address by kind, bare digits are positional and anything else
// is an id.
func ParsePortRef(s string) PortRef {
	if s == "" {
		return PortRef{}
	}
	if kind, n, ok := strings.Cut(s, ":"); ok {
		switch PortKind(kind) {
		case PortKindInput, PortKindOutput, PortKindAttribute:
			if i, ok := parseIndex(n); ok {
				return PortAt(PortKind(kind), i)
			}
		}
	}
	if i, ok := parseIndex(s); ok {
		return Positional(i)
	}
	return PortID(s)
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (r PortRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *PortRef) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = PortRef{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = ParsePortRef(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("port reference must be a string or number: %s", b)
	}
	if f >= 0 && f == math.Trunc(f) && f <= math.MaxInt32 {
		*r = Positional(int(f))
		return nil
	}
	*r = PortID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}
