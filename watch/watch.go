// Package watch instruments object graphs for observability. Watch wraps
// a root object in a decorator that logs every read, write, and call,
// recursively propagating the wrapping to the values it produces.
package watch

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/traitkit/traitkit/introspect"
	"github.com/traitkit/traitkit/props"
)

// Tracer owns the wrap state of one tracing session. Wrap state lives in
// an identity-keyed side table rather than as a marker on the object, so
// wrapped objects stay structurally untouched; the same table serves as
// the visited set that terminates wrapping on cyclic graphs.
type Tracer struct {
	mu        sync.Mutex
	wrapped   map[uintptr]*Node
	serialize Serializer
	sink      Sink
	logger    *zap.Logger
	session   string
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithSink directs log lines to the given sink. The default sink writes
// lines to standard output.
func WithSink(s Sink) Option {
	return func(t *Tracer) { t.sink = s }
}

// WithSerializer replaces the value serializer used in log lines.
func WithSerializer(s Serializer) Option {
	return func(t *Tracer) { t.serialize = s }
}

// WithLogger directs log lines to a zap logger, tagged with the tracer's
// session id. Ignored when WithSink is also given.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracer) { t.logger = l }
}

// New creates a tracer with a fresh session id.
func New(opts ...Option) *Tracer {
	t := &Tracer{
		wrapped:   make(map[uintptr]*Node),
		serialize: Serialize,
		session:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.sink == nil {
		if t.logger != nil {
			t.sink = ZapSink(t.logger.With(zap.String("trace_session", t.session)))
		} else {
			t.sink = WriterSink(os.Stdout)
		}
	}
	return t
}

// Session returns the tracer's session id.
func (t *Tracer) Session() string { return t.session }

// Watch wraps root in a tracing decorator labeled rootLabel. Values that
// cannot carry tracing — anything but an instance, a property map, or a
// func value — come back unchanged, as does an already-wrapped value.
func (t *Tracer) Watch(root any, rootLabel string) any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wrap(root, rootLabel)
}

type nodeKind int

const (
	kindObject nodeKind = iota
	kindCallable
)

// wrap applies tracing to v under the given path. Caller holds t.mu.
func (t *Tracer) wrap(v any, path string) any {
	if existing, ok := v.(*Node); ok {
		return existing
	}

	var (
		inst *introspect.Instance
		obj  props.Map
		kind nodeKind
	)
	switch x := v.(type) {
	case *introspect.Instance:
		inst = x
	case props.Map:
		obj = x
	case map[string]any:
		obj = props.Map(x)
	default:
		if v == nil || reflect.TypeOf(v).Kind() != reflect.Func {
			return v
		}
		kind = kindCallable
	}

	id := identity(v, inst, obj)
	if node, ok := t.wrapped[id]; ok {
		return node
	}

	node := &Node{tracer: t, path: path, raw: v, inst: inst, obj: obj, kind: kind}
	t.wrapped[id] = node

	// Eagerly wrap the reachable members. Values produced later by calls
	// and writes are wrapped at production time instead.
	switch {
	case inst != nil:
		for _, name := range inst.Names() {
			if introspect.Reserved(name) {
				continue
			}
			val, _ := inst.Get(name)
			inst.Set(name, t.wrap(val, path+"."+name))
		}
	case obj != nil:
		for name, val := range obj {
			if introspect.Reserved(name) {
				continue
			}
			obj[name] = t.wrap(val, path+"."+name)
		}
	}
	return node
}

// identity keys the side table. Instances, maps, and funcs all have a
// stable referent address for the lifetime of the object.
func identity(v any, inst *introspect.Instance, obj props.Map) uintptr {
	if inst != nil {
		return reflect.ValueOf(inst).Pointer()
	}
	if obj != nil {
		return reflect.ValueOf(obj).Pointer()
	}
	return reflect.ValueOf(v).Pointer()
}

func (t *Tracer) logf(format string, args ...any) {
	t.sink.Emit(fmt.Sprintf(format, args...))
}

// Node is the tracing decorator around one object. It delegates every
// access to the underlying object, logging as it goes.
type Node struct {
	tracer *Tracer
	path   string
	raw    any
	inst   *introspect.Instance
	obj    props.Map
	kind   nodeKind
}

// Path returns the node's fully-qualified access path.
func (n *Node) Path() string { return n.path }

// Raw returns the underlying object.
func (n *Node) Raw() any { return n.raw }

// Callable reports whether the node wraps a func value.
func (n *Node) Callable() bool { return n.kind == kindCallable }

func (n *Node) member(name string) (any, bool) {
	if n.inst != nil {
		return n.inst.Get(name)
	}
	if n.obj != nil {
		v, ok := n.obj[name]
		return v, ok
	}
	return nil, false
}

// Get reads the named member. Reads of non-callable members log a line;
// fetching a callable produces no line (its invocation logs instead).
// The returned value is the stored, already-wrapped one.
func (n *Node) Get(name string) any {
	v, _ := n.member(name)
	if isCallable(v) {
		return v
	}
	n.tracer.mu.Lock()
	defer n.tracer.mu.Unlock()
	n.tracer.logf("Reading %s.%s -> %s", n.path, name, n.tracer.serialize(v))
	return v
}

// Set writes the named member, wrapping the new value under the member's
// path before storing it. Set always succeeds.
func (n *Node) Set(name string, value any) {
	n.tracer.mu.Lock()
	defer n.tracer.mu.Unlock()
	n.tracer.logf("Writing %s.%s <- %s", n.path, name, n.tracer.serialize(value))
	wrapped := n.tracer.wrap(value, n.path+"."+name)
	switch {
	case n.inst != nil:
		n.inst.Set(name, wrapped)
	case n.obj != nil:
		n.obj[name] = wrapped
	}
}

// Call invokes the underlying func with the given arguments, logs the
// call with its serialized arguments and result, and returns the result
// wrapped under a path that appends the call signature.
//
// Multi-valued funcs are adapted: a trailing non-nil error return is
// surfaced as Call's error, a single remaining value is returned as is,
// and several remaining values come back as a []any.
func (n *Node) Call(args ...any) (any, error) {
	if n.kind != kindCallable {
		return nil, fmt.Errorf("call %s: not a callable", n.path)
	}

	raws := make([]any, len(args))
	for i, a := range args {
		raws[i] = unwrap(a)
	}

	fn := reflect.ValueOf(n.raw)
	in, err := buildArgs(fn.Type(), raws)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", n.path, err)
	}
	out := fn.Call(in)

	result, err := collapseResults(out)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", n.path, err)
	}

	n.tracer.mu.Lock()
	defer n.tracer.mu.Unlock()
	argText := make([]string, len(raws))
	for i, a := range raws {
		argText[i] = n.tracer.serialize(a)
	}
	callPath := fmt.Sprintf("%s(%s)", n.path, strings.Join(argText, ", "))
	n.tracer.logf("Calling %s -> %s", callPath, n.tracer.serialize(result))
	return n.tracer.wrap(result, callPath), nil
}

// Invoke fetches the named member and calls it. Unlike Get, the fetch
// itself does not log.
func (n *Node) Invoke(name string, args ...any) (any, error) {
	v, ok := n.member(name)
	if !ok {
		return nil, fmt.Errorf("call %s.%s: no such member", n.path, name)
	}
	callee, ok := v.(*Node)
	if !ok || !callee.Callable() {
		return nil, fmt.Errorf("call %s.%s: not a callable", n.path, name)
	}
	return callee.Call(args...)
}

func isCallable(v any) bool {
	if n, ok := v.(*Node); ok {
		return n.Callable()
	}
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

func unwrap(v any) any {
	if n, ok := v.(*Node); ok {
		return n.raw
	}
	return v
}

func buildArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("want at least %d args, got %d", ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("want %d args, got %d", ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= ft.NumIn()-1 {
			pt = ft.In(ft.NumIn() - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if a == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		switch {
		case av.Type().AssignableTo(pt):
		case av.Type().ConvertibleTo(pt):
			av = av.Convert(pt)
		default:
			return nil, fmt.Errorf("arg %d: %s is not assignable to %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func collapseResults(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errType) {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, nil
	}
}
