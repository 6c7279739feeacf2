package step

import "github.com/cockroachdb/errors"

// Kind is the closed set of step shapes a renderer has to understand.
type Kind uint8

const (
	KindCompare Kind = iota + 1
	KindSwap
	KindMerge
	KindSorted
	KindPivot
	KindFound
	KindNotFound
	KindRange
	KindInit
	KindVisit
	KindEdge
	KindUpdate
	KindUnreachable
	KindCheck
	KindSkip
	KindRotate
	KindBacktrack
)

// ErrUnknownKind is returned by ParseKind for names outside the closed set.
var ErrUnknownKind = errors.New("step: unknown kind")

var kindNames = [...]string{
	KindCompare:     "compare",
	KindSwap:        "swap",
	KindMerge:       "merge",
	KindSorted:      "sorted",
	KindPivot:       "pivot",
	KindFound:       "found",
	KindNotFound:    "notFound",
	KindRange:       "range",
	KindInit:        "init",
	KindVisit:       "visit",
	KindEdge:        "edge",
	KindUpdate:      "update",
	KindUnreachable: "unreachable",
	KindCheck:       "check",
	KindSkip:        "skip",
	KindRotate:      "rotate",
	KindBacktrack:   "backtrack",
}

// String returns the stable wire name of k.
func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindCompare; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for k := KindCompare; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}
