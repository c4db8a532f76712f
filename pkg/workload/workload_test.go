package workload_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Spyriounis/hashmap/pkg/container/chmap"
	"github.com/Spyriounis/hashmap/pkg/container/gomap"
	"github.com/Spyriounis/hashmap/pkg/workload"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	ops, err := workload.ParseScript(strings.NewReader(lines(
		`# comment`,
		`{"op":"put","key":"a","value":"1"}`,
		``,
		`{"op":"put","key":"b","value":{"x":[1,2]}}`,
		`{"op":"get","key":"a"}`,
		`{"op":"remove","key":"b"}`,
		`{"op":"contains","key":"b"}`,
		`{"op":"len"}`,
	)))
	require.NoError(t, err)
	require.Equal(t, []workload.Op{
		{Kind: workload.OpPut, Key: "a", Value: "1"},
		{Kind: workload.OpPut, Key: "b", Value: `{"x":[1,2]}`},
		{Kind: workload.OpGet, Key: "a"},
		{Kind: workload.OpRemove, Key: "b"},
		{Kind: workload.OpContains, Key: "b"},
		{Kind: workload.OpLen},
	}, ops)
}

func TestParseScriptErr(t *testing.T) {
	for _, td := range []struct {
		name   string
		input  string
		expect *workload.ErrorSyntax
	}{
		{"invalid_json", lines(`{"op":`),
			&workload.ErrorSyntax{Line: 1, Message: "invalid JSON"}},
		{"unknown_op", lines(`{"op":"len"}`, `{"op":"pop","key":"a"}`),
			&workload.ErrorSyntax{Line: 2, Message: `unknown op "pop"`}},
		{"missing_value", lines(`{"op":"put","key":"a"}`),
			&workload.ErrorSyntax{Line: 1, Message: "missing value"}},
		{"missing_key", lines(`{"op":"get"}`),
			&workload.ErrorSyntax{Line: 1, Message: "missing string key"}},
		{"numeric_key", lines(`{"op":"get","key":1}`),
			&workload.ErrorSyntax{Line: 1, Message: "missing string key"}},
	} {
		t.Run(td.name, func(t *testing.T) {
			ops, err := workload.ParseScript(strings.NewReader(td.input))
			require.Nil(t, ops)
			require.Equal(t, td.expect, err)
		})
	}
}

func TestReplay(t *testing.T) {
	ops, err := workload.ParseScript(strings.NewReader(lines(
		`{"op":"put","key":"a","value":"1"}`,
		`{"op":"put","key":"b","value":"2"}`,
		`{"op":"put","key":"a","value":"3"}`,
		`{"op":"get","key":"a"}`,
		`{"op":"remove","key":"b"}`,
		`{"op":"remove","key":"b"}`,
		`{"op":"get","key":"b"}`,
		`{"op":"contains","key":"a"}`,
		`{"op":"len"}`,
	)))
	require.NoError(t, err)

	var out bytes.Buffer
	m := chmap.NewDefault[string, string]()
	workload.Replay(&out, m, ops)
	require.Equal(t, lines(
		`get "a": "3"`,
		`remove "b": ok`,
		`remove "b": key "b" not found`,
		`get "b": absent`,
		`contains "a": true`,
		`len: 1`,
	), out.String())
	require.Equal(t, `{"a": "3"}`, m.String())
}

func TestGenerateKeys(t *testing.T) {
	a, err := workload.GenerateKeys(16, 7)
	require.NoError(t, err)
	b, err := workload.GenerateKeys(16, 7)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 16)
	for _, k := range a {
		require.Len(t, k, 36)
	}
}

func TestBench(t *testing.T) {
	c := workload.BenchConfig{Keys: 64, Ops: 4096, Seed: 1}
	m := chmap.NewDefault[string, int]()
	r, err := workload.Bench(m, c)
	require.NoError(t, err)
	require.Equal(t, c.Ops, r.Puts+r.Gets+r.Removes)
	require.LessOrEqual(t, m.Len(), c.Keys)

	// The same workload yields the same observable results
	// on a reference implementation.
	ref := gomap.New[string, int](0)
	rr, err := workload.Bench(ref, c)
	require.NoError(t, err)
	rr.Duration = r.Duration
	require.Equal(t, r, rr)
	require.Equal(t, ref.Len(), m.Len())
	for _, k := range ref.Keys() {
		v, _ := ref.Get(k)
		require.Equal(t, v, m.GetOr(k, -1))
	}

	var out bytes.Buffer
	r.Write(&out)
	require.Contains(t, out.String(), "operations: 4,096 in ")
	require.Contains(t, out.String(), "removes: ")
}

func TestBenchInvalid(t *testing.T) {
	_, err := workload.Bench(
		chmap.NewDefault[string, int](),
		workload.BenchConfig{Keys: 0, Ops: 1},
	)
	require.Error(t, err)
}

func lines(lines ...string) string {
	var b strings.Builder
	for i := range lines {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}
