package trace

import "strconv"

type Kind uint8

const (
	KindRead Kind = iota
	KindWrite
	KindSnapshot
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindSnapshot:
		return "string"
	default:
		return "unknown"
	}
}

// Op is one trace step. Value is only meaningful for KindWrite and Index is
// unused by KindSnapshot.
type Op struct {
	Kind  Kind
	Index int
	Value int
}

func Read(index int) Op {
	return Op{Kind: KindRead, Index: index}
}

func Write(index, value int) Op {
	return Op{Kind: KindWrite, Index: index, Value: value}
}

func Snapshot() Op {
	return Op{Kind: KindSnapshot}
}

// String renders the op in trace line form.
func (o Op) String() string {
	switch o.Kind {
	case KindRead:
		return "read " + strconv.Itoa(o.Index)
	case KindWrite:
		return "write " + strconv.Itoa(o.Index) + " " + strconv.Itoa(o.Value)
	default:
		return o.Kind.String()
	}
}
