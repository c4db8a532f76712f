// Package workload drives container.Mapper implementations
// with scripted or randomly generated operation sequences.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Spyriounis/hashmap/pkg/container"
	"github.com/tidwall/gjson"
)

type OpKind int8

const (
	_ OpKind = iota
	OpPut
	OpGet
	OpRemove
	OpContains
	OpLen
)

func (k OpKind) String() string {
	switch k {
	case OpPut:
		return "put"
	case OpGet:
		return "get"
	case OpRemove:
		return "remove"
	case OpContains:
		return "contains"
	case OpLen:
		return "len"
	}
	return "OpKind(" + strconv.Itoa(int(k)) + ")"
}

// Op is a single scripted map operation.
type Op struct {
	Kind  OpKind
	Key   string
	Value string
}

// ErrorSyntax is returned by ParseScript for malformed lines.
type ErrorSyntax struct {
	Line    int
	Message string
}

func (e *ErrorSyntax) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseScript parses a JSON-lines script where every line is an object:
//
//	{"op":"put","key":"k","value":"v"}
//	{"op":"get","key":"k"}
//	{"op":"remove","key":"k"}
//	{"op":"contains","key":"k"}
//	{"op":"len"}
//
// Non-string put values are stored as raw JSON.
// Empty lines and lines starting with # are ignored.
func ParseScript(r io.Reader) ([]Op, error) {
	var ops []Op
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if !gjson.Valid(l) {
			return nil, &ErrorSyntax{Line: line, Message: "invalid JSON"}
		}
		res := gjson.GetMany(l, "op", "key", "value")
		op := Op{Key: res[1].String()}
		switch res[0].String() {
		case "put":
			op.Kind = OpPut
			if !res[2].Exists() {
				return nil, &ErrorSyntax{Line: line, Message: "missing value"}
			}
			if res[2].Type == gjson.String {
				op.Value = res[2].String()
			} else {
				op.Value = res[2].Raw
			}
		case "get":
			op.Kind = OpGet
		case "remove":
			op.Kind = OpRemove
		case "contains":
			op.Kind = OpContains
		case "len":
			ops = append(ops, Op{Kind: OpLen})
			continue
		default:
			return nil, &ErrorSyntax{
				Line:    line,
				Message: fmt.Sprintf("unknown op %q", res[0].String()),
			}
		}
		if res[1].Type != gjson.String {
			return nil, &ErrorSyntax{Line: line, Message: "missing string key"}
		}
		ops = append(ops, op)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

// Replay applies ops to m in order and writes one line
// per observable result to w. A failing remove is reported
// and doesn't interrupt the replay.
func Replay(w io.Writer, m container.Mapper[string, string], ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpPut:
			m.Put(op.Key, op.Value)
		case OpGet:
			if v, ok := m.Get(op.Key); ok {
				fmt.Fprintf(w, "get %q: %q\n", op.Key, v)
			} else {
				fmt.Fprintf(w, "get %q: absent\n", op.Key)
			}
		case OpRemove:
			if err := m.Remove(op.Key); err != nil {
				fmt.Fprintf(w, "remove %q: %s\n", op.Key, err)
			} else {
				fmt.Fprintf(w, "remove %q: ok\n", op.Key)
			}
		case OpContains:
			fmt.Fprintf(w, "contains %q: %t\n", op.Key, m.Contains(op.Key))
		case OpLen:
			fmt.Fprintf(w, "len: %d\n", m.Len())
		}
	}
}
