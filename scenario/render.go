package scenario

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/roadref/openlr"
)

// Result is the JSON shape of a connected reference.
type Result struct {
	Segments []SegmentResult `json:"segments"`
	Route    []uint64        `json:"route"`
	Length   float64         `json:"length"`
}

// SegmentResult is one connected segment.
type SegmentResult struct {
	Index  int      `json:"index"`
	Edges  []uint64 `json:"edges"`
	Length float64  `json:"length"`
	Fake   bool     `json:"fake_boundary"`
}

// NewResult summarizes per-segment paths and their concatenation.
func NewResult(parts []openlr.EdgeSequence) Result {
	res := Result{Segments: make([]SegmentResult, len(parts))}
	for i, p := range parts {
		res.Segments[i] = SegmentResult{
			Index:  i,
			Edges:  edgeIDs(p),
			Length: p.Length(),
			Fake:   p.HasFakeBoundary(),
		}
	}
	route := openlr.Concat(parts)
	res.Route = edgeIDs(route)
	res.Length = route.Length()

	return res
}

func edgeIDs(s openlr.EdgeSequence) []uint64 {
	ids := make([]uint64, len(s))
	for i, e := range s {
		ids[i] = uint64(e.ID)
	}

	return ids
}

// Render writes parts to w, as indented JSON or as plain text lines.
func Render(w io.Writer, parts []openlr.EdgeSequence, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(NewResult(parts))
	}

	for i, p := range parts {
		marker := ""
		if p.HasFakeBoundary() {
			marker = " (fake boundary)"
		}
		if _, err := fmt.Fprintf(w, "segment %d: %s %gm%s\n", i, p, p.Length(), marker); err != nil {
			return err
		}
	}
	route := openlr.Concat(parts)
	_, err := fmt.Fprintf(w, "route: %s %gm\n", route, route.Length())

	return err
}
