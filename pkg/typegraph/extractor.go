package typegraph

import (
	"errors"
	"fmt"

	"github.com/jensneuse/abstractlogger"
	"github.com/phf/go-queue/queue"

	"github.com/Atwolf/graph-vis/pkg/introspection"
)

// ErrNoRootType is returned when the schema declares no query type, leaving
// the traversal without an entry point.
var ErrNoRootType = errors.New("schema declares no query type")

// RootTypeNotFoundError is returned when the schema declares a query type
// name but no type record with that name exists.
type RootTypeNotFoundError struct {
	TypeName string
}

func (e *RootTypeNotFoundError) Error() string {
	return fmt.Sprintf("root type %q not found among schema types", e.TypeName)
}

// Extractor builds a Graph from an introspection document by breadth-first
// traversal of type references, starting at the query type. Each call to
// Extract returns an independent Graph; an Extractor holds no per-extraction
// state and is safe to reuse.
type Extractor struct {
	log abstractlogger.Logger
}

type Option func(options *opts)

func WithLogger(log abstractlogger.Logger) Option {
	return func(options *opts) {
		options.log = log
	}
}

type opts struct {
	log abstractlogger.Logger
}

func NewExtractor(options ...Option) *Extractor {
	op := &opts{
		log: abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(op)
	}
	return &Extractor{
		log: op.log,
	}
}

// Extract parses doc and walks the type-reference graph from the query type.
//
// Types are visited at most once, which bounds the traversal on cyclic
// schemas. Edges are appended in discovery order: for each dequeued type all
// FIELD edges in field-declaration order, then IMPLEMENTS, then UNION_MEMBER;
// across types, in dequeue order. An edge whose target has no matching type
// record is still emitted, without a node for the target - incomplete
// introspection data degrades the graph, it does not fail it.
func (e *Extractor) Extract(doc *introspection.Document) (*Graph, error) {
	types, rootName, err := introspection.Parse(doc)
	if err != nil {
		return nil, err
	}
	if rootName == "" {
		return nil, ErrNoRootType
	}

	typesByName := make(map[string]introspection.FullType, len(types))
	for _, fullType := range types {
		typesByName[fullType.Name] = fullType
	}

	rootType, exists := typesByName[rootName]
	if !exists {
		return nil, &RootTypeNotFoundError{TypeName: rootName}
	}

	graph := newGraph(rootName)
	graph.addNode(Normalize(rootType))

	visited := map[string]bool{
		rootName: true,
	}

	pending := queue.New()
	pending.PushBack(rootName)

	for pending.Len() > 0 {
		currentName := pending.PopFront().(string)
		current := graph.Node(currentName)

		for _, field := range current.Fields {
			graph.edges = append(graph.edges, Edge{
				Source:    currentName,
				Target:    field.TypeName,
				Kind:      EdgeKindField,
				FieldName: field.Name,
			})
			e.discover(graph, typesByName, visited, pending, field.TypeName)
		}

		for _, interfaceName := range current.Interfaces {
			graph.edges = append(graph.edges, Edge{
				Source: currentName,
				Target: interfaceName,
				Kind:   EdgeKindImplements,
			})
			e.discover(graph, typesByName, visited, pending, interfaceName)
		}

		for _, memberName := range current.UnionMembers {
			graph.edges = append(graph.edges, Edge{
				Source: currentName,
				Target: memberName,
				Kind:   EdgeKindUnionMember,
			})
			e.discover(graph, typesByName, visited, pending, memberName)
		}
	}

	e.log.Debug("typegraph.Extractor.Extract: graph complete",
		abstractlogger.String("rootType", rootName),
		abstractlogger.Int("nodes", graph.NodeCount()),
		abstractlogger.Int("edges", len(graph.edges)),
	)

	return graph, nil
}

// discover normalizes and enqueues the named type if it has not been visited
// and a raw record for it exists. A missing record is tolerated: the edge
// that led here was already emitted.
func (e *Extractor) discover(graph *Graph, typesByName map[string]introspection.FullType, visited map[string]bool, pending *queue.Queue, name string) {
	if visited[name] {
		return
	}
	fullType, exists := typesByName[name]
	if !exists {
		e.log.Debug("typegraph.Extractor.discover: no type record for edge target",
			abstractlogger.String("typeName", name),
		)
		return
	}
	graph.addNode(Normalize(fullType))
	visited[name] = true
	pending.PushBack(name)
}
