package step

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
	"lukechampine.com/blake3"
)

// Record is the flat, serializable view of a Step. Exactly the fields that
// belong to Kind are set.
type Record struct {
	Kind        string   `json:"kind" yaml:"kind" msgpack:"kind"`
	Description string   `json:"description" yaml:"description" msgpack:"description"`
	Indices     []int    `json:"indices,omitempty" yaml:"indices,omitempty" msgpack:"indices,omitempty"`
	Array       []int    `json:"array,omitempty" yaml:"array,omitempty" msgpack:"array,omitempty"`
	Index       *int     `json:"index,omitempty" yaml:"index,omitempty" msgpack:"index,omitempty"`
	Target      *int     `json:"target,omitempty" yaml:"target,omitempty" msgpack:"target,omitempty"`
	Left        *int     `json:"left,omitempty" yaml:"left,omitempty" msgpack:"left,omitempty"`
	Right       *int     `json:"right,omitempty" yaml:"right,omitempty" msgpack:"right,omitempty"`
	Node        string   `json:"node,omitempty" yaml:"node,omitempty" msgpack:"node,omitempty"`
	Value       *int64   `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Measure     string   `json:"measure,omitempty" yaml:"measure,omitempty" msgpack:"measure,omitempty"`
	From        string   `json:"from,omitempty" yaml:"from,omitempty" msgpack:"from,omitempty"`
	To          string   `json:"to,omitempty" yaml:"to,omitempty" msgpack:"to,omitempty"`
	Weight      *int64   `json:"weight,omitempty" yaml:"weight,omitempty" msgpack:"weight,omitempty"`
	Distance    *int64   `json:"distance,omitempty" yaml:"distance,omitempty" msgpack:"distance,omitempty"`
	Nodes       []string `json:"nodes,omitempty" yaml:"nodes,omitempty" msgpack:"nodes,omitempty"`
	Direction   string   `json:"direction,omitempty" yaml:"direction,omitempty" msgpack:"direction,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// ToRecord flattens s.
func ToRecord(s Step) Record {
	r := Record{Kind: s.Kind().String(), Description: s.Description()}
	switch v := s.(type) {
	case Compare:
		r.Indices = v.Indices()
	case NodeCompare:
		r.Node, r.Value = v.Node, ptr(int64(v.Value))
	case Swap:
		r.Indices, r.Array = []int{v.I, v.J}, v.Array()
	case Merge:
		r.Index, r.Array = ptr(v.Index), v.Array()
	case Sorted:
		r.Index = ptr(v.Index)
	case Pivot:
		r.Index = ptr(v.Index)
	case Found:
		r.Index = ptr(v.Index)
	case NodeFound:
		r.Node = v.Node
	case NotFound:
		r.Target = ptr(v.Target)
	case Range:
		r.Left, r.Right = ptr(v.Left), ptr(v.Right)
	case Init:
		r.Node = v.Node
	case ArrayInit:
		r.Array = v.Array()
	case Visit:
		r.Node = v.Node
		if v.Measure != MeasureNone {
			r.Measure, r.Value = v.Measure.String(), ptr(v.Value)
		}
	case Edge:
		r.From, r.To, r.Weight = v.From, v.To, ptr(v.Weight)
	case Update:
		r.Node, r.Distance = v.Node, ptr(v.Distance)
	case Unreachable:
		r.Nodes = v.Nodes()
	case Check:
		r.From, r.To, r.Weight = v.From, v.To, ptr(v.Weight)
	case Skip:
		r.From, r.To, r.Weight = v.From, v.To, ptr(v.Weight)
	case Rotate:
		r.Node, r.Direction = v.Node, v.Direction.String()
	case Backtrack:
		r.Node = v.Node
	}
	return r
}

// Records flattens every step of l.
func (l *Log) Records() []Record {
	steps := l.Steps()
	out := make([]Record, len(steps))
	for i, s := range steps {
		out[i] = ToRecord(s)
	}
	return out
}

// MarshalMsgpack encodes the log as a msgpack array of records.
func (l *Log) MarshalMsgpack() ([]byte, error) {
	b, err := msgpack.Marshal(l.Records())
	if err != nil {
		return nil, errors.Wrap(err, "step: encode log")
	}
	return b, nil
}

// Fingerprint is the hex BLAKE3-256 digest of the msgpack-encoded records.
// Two runs over equal input yield equal fingerprints.
func (l *Log) Fingerprint() (string, error) {
	h := blake3.New(32, nil)
	enc := msgpack.NewEncoder(h)
	for _, r := range l.Records() {
		if err := enc.Encode(r); err != nil {
			return "", errors.Wrap(err, "step: fingerprint")
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
