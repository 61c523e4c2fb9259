package htmldiff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around a change.
const contextLines = 3

// LineKind indicates the type of a unified diff line.
type LineKind int

const (
	// LineContext is an unchanged line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the new document.
	LineAdd

	// LineRemove is a line present only in the old document.
	LineRemove
)

// Line is a single line of a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a group of nearby changes with surrounding context.
type Hunk struct {
	// OldStart and NewStart are 1-based line numbers.
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Unified is a line-oriented, plain-text view of a document change.
type Unified struct {
	OldName   string
	NewName   string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// NewUnified compares the documents line by line.
// It returns nil when they are identical.
func NewUnified(oldName, newName, oldDoc, newDoc string, accurate bool) *Unified {
	if oldDoc == newDoc {
		return nil
	}

	a, b := splitUnifiedLines(oldDoc), splitUnifiedLines(newDoc)
	opcodes := NewMatcher(a, b, lineJunk(accurate), false).Opcodes()

	ops := expandOpcodes(a, b, opcodes)
	hunks := groupIntoHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Unified{OldName: oldName, NewName: newName, Hunks: hunks}
	for _, op := range ops {
		switch op.kind {
		case LineAdd:
			diff.Additions++
		case LineRemove:
			diff.Deletions++
		}
	}
	return diff
}

// String renders the diff with ---/+++ headers.
func (u *Unified) String() string {
	if u == nil || len(u.Hunks) == 0 {
		return ""
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- %s\n", u.OldName)
	fmt.Fprintf(&builder, "+++ %s\n", u.NewName)

	for _, hunk := range u.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case LineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case LineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}
	return builder.String()
}

// HasChanges reports whether the diff contains any hunk.
func (u *Unified) HasChanges() bool {
	return u != nil && len(u.Hunks) > 0
}

// lineJunk treats blank lines as junk in fast mode.
func lineJunk(accurate bool) JunkFunc {
	if accurate {
		return NoJunk
	}
	return func(line string) bool {
		return strings.TrimSpace(line) == ""
	}
}

// splitUnifiedLines splits content into lines, dropping the final empty
// element produced by a trailing newline.
func splitUnifiedLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type lineOp struct {
	kind    LineKind
	content string
}

// expandOpcodes flattens opcodes into one op per line. Replaced lines are
// listed as removals followed by additions.
func expandOpcodes(a, b []string, opcodes []Opcode) []lineOp {
	var ops []lineOp
	for _, op := range opcodes {
		if op.Tag == OpEqual {
			for _, line := range a[op.I1:op.I2] {
				ops = append(ops, lineOp{kind: LineContext, content: line})
			}
			continue
		}
		for _, line := range a[op.I1:op.I2] {
			ops = append(ops, lineOp{kind: LineRemove, content: line})
		}
		for _, line := range b[op.J1:op.J2] {
			ops = append(ops, lineOp{kind: LineAdd, content: line})
		}
	}
	return ops
}

// groupIntoHunks groups changed lines that are at most 2*contextLines apart.
func groupIntoHunks(ops []lineOp) []Hunk {
	type changeRange struct {
		start, end int
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0
	for idx, op := range ops {
		isChange := op.kind != LineContext
		if isChange && !inChange {
			rangeStart = idx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, idx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []Hunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) && ranges[mergeEnd].start-ranges[mergeEnd-1].end <= contextLines*2 {
			mergeEnd++
		}
		hunks = append(hunks, buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end))
		rangeIdx = mergeEnd
	}
	return hunks
}

func buildHunk(ops []lineOp, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OldStart: 1, NewStart: 1}
	for _, op := range ops[:start] {
		if op.kind != LineAdd {
			hunk.OldStart++
		}
		if op.kind != LineRemove {
			hunk.NewStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, Line{Kind: op.kind, Content: op.content})
		switch op.kind {
		case LineContext:
			hunk.OldCount++
			hunk.NewCount++
		case LineRemove:
			hunk.OldCount++
		case LineAdd:
			hunk.NewCount++
		}
	}
	return hunk
}
