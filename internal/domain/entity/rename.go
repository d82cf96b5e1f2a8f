package entity

// RenameKind identifies a rename operation. The values double as the
// operation names accepted on the command line and stored in preferences.
type RenameKind string

const (
	RenameAddPrefix RenameKind = "add-prefix"
	RenameAddSuffix RenameKind = "add-suffix"
	RenameReplace   RenameKind = "replace"
	RenameNumber    RenameKind = "number"
	RenameLower     RenameKind = "lower"
	RenameUpper     RenameKind = "upper"
)

// RenameKinds lists every supported operation, in menu order.
var RenameKinds = []RenameKind{
	RenameAddPrefix, RenameAddSuffix, RenameReplace, RenameNumber, RenameLower, RenameUpper,
}

// RenameOperation is one of AddPrefix, AddSuffix, ReplaceText, AddNumbers,
// MakeLowercase or MakeUppercase.
type RenameOperation interface {
	Kind() RenameKind
	isRenameOperation()
}

// AddPrefix puts Text in front of the name.
type AddPrefix struct{ Text string }

// AddSuffix puts Text after the name, before the extension.
type AddSuffix struct{ Text string }

// ReplaceText replaces every Old with New in the name.
type ReplaceText struct{ Old, New string }

// AddNumbers appends _NNN to the name, starting at Start.
type AddNumbers struct{ Start int }

// MakeLowercase lowercases the name and its extension.
type MakeLowercase struct{}

// MakeUppercase uppercases the name and its extension.
type MakeUppercase struct{}

func (AddPrefix) Kind() RenameKind     { return RenameAddPrefix }
func (AddSuffix) Kind() RenameKind     { return RenameAddSuffix }
func (ReplaceText) Kind() RenameKind   { return RenameReplace }
func (AddNumbers) Kind() RenameKind    { return RenameNumber }
func (MakeLowercase) Kind() RenameKind { return RenameLower }
func (MakeUppercase) Kind() RenameKind { return RenameUpper }

func (AddPrefix) isRenameOperation()     {}
func (AddSuffix) isRenameOperation()     {}
func (ReplaceText) isRenameOperation()   {}
func (AddNumbers) isRenameOperation()    {}
func (MakeLowercase) isRenameOperation() {}
func (MakeUppercase) isRenameOperation() {}

// RenameStatus is the planned outcome for a single file.
type RenameStatus int

const (
	RenamePending RenameStatus = iota
	RenameUnchanged
	RenameProtected
)

// RenamePlanEntry pairs a file with the name it will get.
type RenamePlanEntry struct {
	Original string
	Target   string
	Status   RenameStatus
}

// RenameResult summarizes an executed plan.
type RenameResult struct {
	Renamed  int
	Skipped  int
	Problems []string
}
