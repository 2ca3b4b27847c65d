package syntax

// QualifierSpec is one element of a type qualifier list.
type QualifierSpec interface {
	Node
	qualifierNode()
}

// TypeQualifier is an ordered list of qualifiers. Order is preserved as
// written.
type TypeQualifier struct {
	Specs []QualifierSpec
	Span  Span
}

func (q *TypeQualifier) Pos() Span { return q.Span }

// Storage is a storage or memory qualifier keyword.
type Storage int

const (
	StorageConst Storage = iota
	StorageIn
	StorageOut
	StorageInOut
	StorageCentroid
	StoragePatch
	StorageSample
	StorageUniform
	StorageBuffer
	StorageShared
	StorageCoherent
	StorageVolatile
	StorageRestrict
	StorageReadOnly
	StorageWriteOnly
	StorageAttribute
	StorageVarying
	StorageSubroutine
)

var storageNames = [...]string{
	StorageConst:      "const",
	StorageIn:         "in",
	StorageOut:        "out",
	StorageInOut:      "inout",
	StorageCentroid:   "centroid",
	StoragePatch:      "patch",
	StorageSample:     "sample",
	StorageUniform:    "uniform",
	StorageBuffer:     "buffer",
	StorageShared:     "shared",
	StorageCoherent:   "coherent",
	StorageVolatile:   "volatile",
	StorageRestrict:   "restrict",
	StorageReadOnly:   "readonly",
	StorageWriteOnly:  "writeonly",
	StorageAttribute:  "attribute",
	StorageVarying:    "varying",
	StorageSubroutine: "subroutine",
}

func (s Storage) String() string {
	if int(s) < len(storageNames) {
		return storageNames[s]
	}
	return "?"
}

// StorageQualifier is a storage keyword. TypeNames is only used by
// "subroutine(a, b)".
type StorageQualifier struct {
	Storage   Storage
	TypeNames []string
	Span      Span
}

func (q *StorageQualifier) Pos() Span      { return q.Span }
func (q *StorageQualifier) qualifierNode() {}

// LayoutQualifier is layout(...).
type LayoutQualifier struct {
	IDs  []*LayoutID
	Span Span
}

func (q *LayoutQualifier) Pos() Span      { return q.Span }
func (q *LayoutQualifier) qualifierNode() {}

// LayoutID is one "name" or "name = value" entry of a layout qualifier.
type LayoutID struct {
	Name  string
	Value Expr
	Span  Span
}

func (l *LayoutID) Pos() Span { return l.Span }

// Precision is a precision qualifier keyword.
type Precision int

const (
	PrecisionHigh Precision = iota
	PrecisionMedium
	PrecisionLow
)

func (p Precision) String() string {
	switch p {
	case PrecisionHigh:
		return "highp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionLow:
		return "lowp"
	}
	return "?"
}

// PrecisionQualifier is highp, mediump or lowp.
type PrecisionQualifier struct {
	Precision Precision
	Span      Span
}

func (q *PrecisionQualifier) Pos() Span      { return q.Span }
func (q *PrecisionQualifier) qualifierNode() {}

// Interpolation is an interpolation qualifier keyword.
type Interpolation int

const (
	InterpSmooth Interpolation = iota
	InterpFlat
	InterpNoPerspective
)

func (i Interpolation) String() string {
	switch i {
	case InterpSmooth:
		return "smooth"
	case InterpFlat:
		return "flat"
	case InterpNoPerspective:
		return "noperspective"
	}
	return "?"
}

// InterpolationQualifier is smooth, flat or noperspective.
type InterpolationQualifier struct {
	Interpolation Interpolation
	Span          Span
}

func (q *InterpolationQualifier) Pos() Span      { return q.Span }
func (q *InterpolationQualifier) qualifierNode() {}

// InvariantQualifier is the invariant keyword.
type InvariantQualifier struct {
	Span Span
}

func (q *InvariantQualifier) Pos() Span      { return q.Span }
func (q *InvariantQualifier) qualifierNode() {}

// PreciseQualifier is the precise keyword.
type PreciseQualifier struct {
	Span Span
}

func (q *PreciseQualifier) Pos() Span      { return q.Span }
func (q *PreciseQualifier) qualifierNode() {}
