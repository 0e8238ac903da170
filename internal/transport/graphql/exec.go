package graphql

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/qaboard-backend/internal/domain"
)

// fieldResolver returns the Go value of one field of obj. Lists are []any,
// null is an untyped nil; completeValue turns the value into output.
type fieldResolver func(ctx context.Context, obj any, field string, args map[string]any) (any, error)

// executableSchema runs validated operations against the object resolvers.
// gqlgen's handler does parsing, validation, complexity limits, the error
// presenter and the HTTP transports; this type only walks selection sets.
type executableSchema struct {
	schema    *ast.Schema
	resolvers map[string]fieldResolver
}

var _ graphql.ExecutableSchema = (*executableSchema)(nil)

func newExecutableSchema(schema *ast.Schema, r *Resolver) *executableSchema {
	return &executableSchema{
		schema: schema,
		resolvers: map[string]fieldResolver{
			"Query":        r.query,
			"Mutation":     r.mutation,
			"Question":     r.question,
			"Answer":       r.answer,
			"QuestionPage": r.questionPage,
			"VoteResult":   r.voteResult,
			"Acceptance":   r.acceptance,
		},
	}
}

func (e *executableSchema) Schema() *ast.Schema { return e.schema }

// Complexity weights a question page by its limit; everything else uses the
// default of one plus children.
func (e *executableSchema) Complexity(_ context.Context, typeName, fieldName string, childComplexity int, args map[string]any) (int, bool) {
	if typeName == "Query" && fieldName == "questions" {
		limit, err := toInt(args["limit"])
		if err != nil || limit <= 0 {
			limit = 1
		}
		return 1 + childComplexity*limit, true
	}
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	first := true

	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		ec := &execContext{schema: e.schema, resolvers: e.resolvers, opCtx: opCtx}

		var (
			data graphql.Marshaler
			ok   bool
		)
		switch opCtx.Operation.Operation {
		case ast.Query:
			data, ok = ec.object(ctx, nil, "Query", opCtx.Operation.SelectionSet, nil)
		case ast.Mutation:
			data, ok = ec.object(ctx, nil, "Mutation", opCtx.Operation.SelectionSet, nil)
		default:
			return graphql.ErrorResponse(ctx, "unsupported operation type %q", opCtx.Operation.Operation)
		}
		if !ok {
			data = graphql.Null
		}

		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// execContext is the state of one operation.
type execContext struct {
	schema    *ast.Schema
	resolvers map[string]fieldResolver
	opCtx     *graphql.OperationContext
}

// object resolves the selection set of one object value in document order.
// ok is false when a non-null field came back null, in which case the object
// itself becomes null.
func (ec *execContext) object(ctx context.Context, path ast.Path, typeName string, sel ast.SelectionSet, obj any) (graphql.Marshaler, bool) {
	fields := graphql.CollectFields(ec.opCtx, sel, []string{typeName})
	out := &orderedObject{
		keys:   make([]string, len(fields)),
		values: make([]graphql.Marshaler, len(fields)),
	}

	invalid := false
	for i, f := range fields {
		out.keys[i] = f.Alias
		v, ok := ec.field(ctx, appendPath(path, ast.PathName(f.Alias)), typeName, f, obj)
		if !ok {
			invalid = true
			continue
		}
		out.values[i] = v
	}

	if invalid {
		return nil, false
	}
	return out, true
}

func (ec *execContext) field(ctx context.Context, path ast.Path, typeName string, f graphql.CollectedField, obj any) (graphql.Marshaler, bool) {
	switch f.Name {
	case "__typename":
		return graphql.MarshalString(typeName), true
	case "__schema", "__type":
		ec.addError(ctx, path, f.Field, gqlerror.Errorf("introspection is disabled"))
		return graphql.Null, true
	}

	v, err := ec.resolve(ctx, typeName, f, obj)
	if err != nil {
		ec.addError(ctx, path, f.Field, err)
		return nullFor(f.Definition.Type)
	}

	return ec.completeValue(ctx, path, f.Definition.Type, f, v)
}

func (ec *execContext) resolve(ctx context.Context, typeName string, f graphql.CollectedField, obj any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ec.opCtx.Recover(ctx, r)
		}
	}()

	fn, ok := ec.resolvers[typeName]
	if !ok {
		return nil, fmt.Errorf("no resolver for type %s", typeName)
	}
	return fn(ctx, obj, f.Name, f.ArgumentMap(ec.opCtx.Variables))
}

// completeValue shapes v according to typ. List items are completed
// concurrently so that per-item DataLoader lookups land in one batch.
func (ec *execContext) completeValue(ctx context.Context, path ast.Path, typ *ast.Type, f graphql.CollectedField, v any) (graphql.Marshaler, bool) {
	if v == nil {
		if typ.NonNull {
			ec.addError(ctx, path, f.Field, errors.New("must not be null"))
			return nil, false
		}
		return graphql.Null, true
	}

	if typ.Elem != nil {
		items, ok := v.([]any)
		if !ok {
			ec.addError(ctx, path, f.Field, fmt.Errorf("expected a list, got %T", v))
			return nullFor(typ)
		}

		out := make(graphql.Array, len(items))
		var (
			wg      sync.WaitGroup
			invalid atomic.Bool
		)
		for i, item := range items {
			wg.Add(1)
			go func(i int, item any) {
				defer wg.Done()
				m, ok := ec.completeValue(ctx, appendPath(path, ast.PathIndex(i)), typ.Elem, f, item)
				if !ok {
					invalid.Store(true)
					return
				}
				out[i] = m
			}(i, item)
		}
		wg.Wait()

		if invalid.Load() {
			return nullFor(typ)
		}
		return out, true
	}

	def := ec.schema.Types[typ.NamedType]
	if def == nil {
		ec.addError(ctx, path, f.Field, fmt.Errorf("unknown type %s", typ.NamedType))
		return nullFor(typ)
	}

	if def.Kind == ast.Object {
		m, ok := ec.object(ctx, path, def.Name, f.Selections, v)
		if !ok {
			return nullFor(typ)
		}
		return m, true
	}

	m, err := marshalLeaf(v)
	if err != nil {
		ec.addError(ctx, path, f.Field, err)
		return nullFor(typ)
	}
	return m, true
}

// addError records err at path. The handler's error presenter runs on it.
func (ec *execContext) addError(ctx context.Context, path ast.Path, f *ast.Field, err error) {
	gqlErr, ok := err.(*gqlerror.Error)
	if !ok {
		gqlErr = &gqlerror.Error{Err: err, Message: err.Error()}
	}
	gqlErr.Path = path
	if f != nil && f.Position != nil {
		gqlErr.Locations = []gqlerror.Location{{Line: f.Position.Line, Column: f.Position.Column}}
	}
	graphql.AddError(ctx, gqlErr)
}

func nullFor(typ *ast.Type) (graphql.Marshaler, bool) {
	if typ.NonNull {
		return nil, false
	}
	return graphql.Null, true
}

func appendPath(path ast.Path, el ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, el)
}

// marshalLeaf writes scalars and enums.
func marshalLeaf(v any) (graphql.Marshaler, error) {
	switch v := v.(type) {
	case string:
		return graphql.MarshalString(v), nil
	case int:
		return graphql.MarshalInt(v), nil
	case int64:
		return graphql.MarshalInt64(v), nil
	case bool:
		return graphql.MarshalBoolean(v), nil
	case uuid.UUID:
		return graphql.MarshalString(v.String()), nil
	case time.Time:
		return graphql.MarshalString(v.UTC().Format(time.RFC3339Nano)), nil
	case domain.QuestionStatus:
		return graphql.MarshalString(string(v)), nil
	case domain.VoteDirection:
		return graphql.MarshalString(string(v)), nil
	}
	return nil, fmt.Errorf("cannot marshal %T", v)
}

// orderedObject is a JSON object that keeps the selection order.
type orderedObject struct {
	keys   []string
	values []graphql.Marshaler
}

func (o *orderedObject) MarshalGQL(w io.Writer) {
	io.WriteString(w, "{") //nolint:errcheck
	for i, k := range o.keys {
		if i > 0 {
			io.WriteString(w, ",") //nolint:errcheck
		}
		graphql.MarshalString(k).MarshalGQL(w)
		io.WriteString(w, ":") //nolint:errcheck
		o.values[i].MarshalGQL(w)
	}
	io.WriteString(w, "}") //nolint:errcheck
}
