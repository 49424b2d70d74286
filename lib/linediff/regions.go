package linediff

// EditRegion is a contiguous changed span: OldLines lines starting at OldStart in the
// old text were replaced by NewLines lines starting at NewStart in the new text.
// Starts are 0 based.
type EditRegion struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
}

type EditType int

const (
	EditInsert EditType = iota
	EditDelete
	EditReplace
)

func (r EditRegion) Type() EditType {
	switch {
	case r.OldLines == 0:
		return EditInsert
	case r.NewLines == 0:
		return EditDelete
	default:
		return EditReplace
	}
}

func (r EditRegion) Inserted() int {
	return r.NewLines
}

func (r EditRegion) Deleted() int {
	return r.OldLines
}

// Regions returns the edited regions from src to dst in document order. Equal spans are
// not reported.
func Regions(src, dst string, opts ...Options) []EditRegion {
	return ToRegions(Do(src, dst, opts...))
}

func ToRegions(diffs []Diff) []EditRegion {
	var result []EditRegion

	oldPos := 0
	newPos := 0
	var current *EditRegion

	flush := func() {
		if current != nil {
			result = append(result, *current)
			current = nil
		}
	}

	for _, d := range diffs {
		if d.Type == DiffEqual {
			flush()
			oldPos += d.Lines
			newPos += d.Lines
			continue
		}

		if current == nil {
			current = &EditRegion{OldStart: oldPos, NewStart: newPos}
		}

		switch d.Type {
		case DiffDelete:
			current.OldLines += d.Lines
			oldPos += d.Lines
		case DiffInsert:
			current.NewLines += d.Lines
			newPos += d.Lines
		}
	}
	flush()

	return result
}

// Inserted counts the lines in dst that are not in src.
func Inserted(src, dst string, opts ...Options) int {
	result := 0
	for _, r := range Regions(src, dst, opts...) {
		result += r.Inserted()
	}
	return result
}
