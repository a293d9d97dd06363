// Package scenario reads self-contained connection scenarios: a road network,
// the reference points of one location reference and the candidate paths of
// every point, all in one YAML (or JSON) document.
//
// Example:
//
//	edges:
//	  - {id: 1, from: a, to: b, length: 50}
//	  - {id: 2, from: b, to: c, length: 60, fake: true}
//	points:
//	  - {frc: 3, distance_to_next: 50}
//	  - {frc: 3}
//	candidates:
//	  - [[1]]
//	  - [[2], [1, 2]]
//
// Candidates are edge-ID lists; candidates[i] belongs to points[i].
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadref/openlr"
	"github.com/katalvlaran/roadref/roadgraph"
)

// Sentinel errors.
var (
	// ErrInvalidScenario wraps structural validation failures.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownEdge indicates a candidate referencing an edge ID that is not declared.
	ErrUnknownEdge = errors.New("scenario: unknown edge")

	// ErrCandidateCount indicates that candidates and points differ in length.
	ErrCandidateCount = errors.New("scenario: candidate sets do not match points")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Scenario is the decoded document.
type Scenario struct {
	Edges      []EdgeSpec   `yaml:"edges" json:"edges" validate:"required,min=1,dive"`
	Points     []PointSpec  `yaml:"points" json:"points" validate:"required,min=1,dive"`
	Candidates [][][]uint64 `yaml:"candidates" json:"candidates"`
}

// EdgeSpec declares one directed edge.
type EdgeSpec struct {
	ID     uint64  `yaml:"id" json:"id" validate:"required"`
	From   string  `yaml:"from" json:"from" validate:"required"`
	To     string  `yaml:"to" json:"to" validate:"required"`
	Length float64 `yaml:"length" json:"length" validate:"gte=0"`
	Fake   bool    `yaml:"fake" json:"fake"`
}

// PointSpec declares one reference point.
type PointSpec struct {
	FRC            uint8   `yaml:"frc" json:"frc" validate:"lte=7"`
	DistanceToNext float64 `yaml:"distance_to_next" json:"distance_to_next" validate:"gte=0"`
}

// Input is a scenario turned into core inputs.
type Input struct {
	Graph      *roadgraph.MemGraph
	Points     []openlr.LocationReferencePoint
	Candidates [][]openlr.EdgeSequence
}

// Parse decodes and validates a scenario.
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile opens path and parses it.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks field constraints and that every point has a candidate set.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if len(s.Candidates) != len(s.Points) {
		return fmt.Errorf("%w: %d points, %d candidate sets", ErrCandidateCount, len(s.Points), len(s.Candidates))
	}

	return nil
}

// Build creates the road graph and resolves candidate edge IDs.
func (s *Scenario) Build() (*Input, error) {
	g := roadgraph.NewMemGraph(roadgraph.WithLoops())
	for _, es := range s.Edges {
		opts := []roadgraph.EdgeOption{roadgraph.WithEdgeID(roadgraph.EdgeID(es.ID))}
		if es.Fake {
			opts = append(opts, roadgraph.WithFake())
		}
		if _, err := g.AddEdge(roadgraph.Junction(es.From), roadgraph.Junction(es.To), es.Length, opts...); err != nil {
			return nil, fmt.Errorf("scenario: edge %d: %w", es.ID, err)
		}
	}

	points := make([]openlr.LocationReferencePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = openlr.LocationReferencePoint{
			FunctionalRoadClass: openlr.FunctionalRoadClass(p.FRC),
			DistanceToNextPoint: p.DistanceToNext,
		}
	}

	candidates := make([][]openlr.EdgeSequence, len(s.Candidates))
	for i, set := range s.Candidates {
		candidates[i] = make([]openlr.EdgeSequence, len(set))
		for j, ids := range set {
			seq := make(openlr.EdgeSequence, len(ids))
			for k, id := range ids {
				e, err := g.Edge(roadgraph.EdgeID(id))
				if err != nil {
					return nil, fmt.Errorf("%w: point %d candidate %d references edge %d", ErrUnknownEdge, i, j, id)
				}
				seq[k] = e
			}
			candidates[i][j] = seq
		}
	}

	return &Input{Graph: g, Points: points, Candidates: candidates}, nil
}
