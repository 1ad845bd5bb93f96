package opscript

import (
	"encoding/json"
	"fmt"

	"misc_tool/pkg/disjointset"
	"misc_tool/pkg/errorutil"
	"misc_tool/pkg/fenwick"
	"misc_tool/pkg/logutil"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Result 是一条操作的执行结果，Value 为 nil 表示该操作没有返回值
type Result struct {
	Index int
	Op    Op
	Value any
}

// Mismatch 记录 expect 和实际结果不一致的操作
type Mismatch struct {
	Index int    `json:"index"`
	Op    string `json:"op"`
	Want  string `json:"want"`
	Got   string `json:"got"`
}

// Report 是脚本执行完后的结果
type Report struct {
	Script     *Script
	Results    []Result
	Mismatches []Mismatch

	ds *disjointset.DisjointSet
	ft *fenwick.Tree[int64]
}

// Run 执行脚本。脚本里的越界或未初始化访问会被转换成 CodeInvalidData 错误返回。
func Run(s *Script) (*Report, error) {
	r := &Report{Script: s}
	switch s.Kind {
	case KindDisjointSet:
		if s.Init {
			r.ds = disjointset.NewInitialized(s.Size)
		} else {
			r.ds = disjointset.New(s.Size)
		}
	case KindFenwick:
		r.ft = fenwick.NewOf[int64](s.Size)
	default:
		return nil, invalid("未知的 kind: %q", s.Kind)
	}

	for i, op := range s.Ops {
		value, err := r.apply(i, op)
		if err != nil {
			return nil, err
		}
		logutil.Debug("第 %d 条操作 %s => %v", i, op, value)
		r.Results = append(r.Results, Result{Index: i, Op: op, Value: value})

		if op.Expect == "" {
			continue
		}
		got := encode(value)
		want := string(pretty.Ugly([]byte(op.Expect)))
		if got != want {
			r.Mismatches = append(r.Mismatches, Mismatch{Index: i, Op: op.String(), Want: want, Got: got})
			logutil.Warn("第 %d 条操作 %s 期望 %s, 实际 %s", i, op, want, got)
		}
	}

	logutil.Info("%s(size=%s) 执行了 %s 条操作, %s 条不符合期望",
		s.Kind, humanize.Comma(int64(s.Size)), humanize.Comma(int64(len(s.Ops))),
		humanize.Comma(int64(len(r.Mismatches))))
	return r, nil
}

func (r *Report) apply(i int, op Op) (value any, err error) {
	defer errorutil.CatchIndex(&err, fmt.Sprintf("第 %d 条操作 %s", i, op))

	arg := func(name string) int { return int(op.Args[name]) }
	if r.ds != nil {
		return applyDisjointSet(r.ds, op.Name, arg), nil
	}
	return applyFenwick(r.ft, op, arg), nil
}

func applyDisjointSet(d *disjointset.DisjointSet, name string, arg func(string) int) any {
	switch name {
	case "makeset":
		d.MakeSet(arg("x"))
	case "makeall":
		for i := 0; i < d.Len(); i++ {
			d.MakeSet(i)
		}
	case "union":
		return d.Union(arg("x"), arg("y"))
	case "find":
		return d.FindSet(arg("x"))
	case "same":
		return d.IsSameSet(arg("x"), arg("y"))
	case "count":
		return d.Count()
	case "setsize":
		return d.SetSize(arg("x"))
	case "sets":
		return d.Sets()
	}
	return nil
}

func applyFenwick(f *fenwick.Tree[int64], op Op, arg func(string) int) any {
	switch op.Name {
	case "add":
		f.Add(arg("place"), op.Args["value"])
	case "sum":
		return f.Sum(arg("from"), arg("to"))
	case "prefix":
		return f.PrefixSum(arg("to"))
	case "search":
		return f.Search(op.Args["target"])
	case "total":
		return f.Total()
	}
	return nil
}

// encode 把结果编码成紧凑 JSON，nil 编码成 null
func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", err.Error())
	}
	return string(b)
}

// Err 有不符合期望的操作时返回 CodeAssertionFailed 错误
func (r *Report) Err() error {
	if len(r.Mismatches) == 0 {
		return nil
	}
	first := r.Mismatches[0]
	return errorutil.Errorf(errorutil.CodeAssertionFailed,
		"%d 条操作不符合期望, 第一条: 第 %d 条 %s 期望 %s 实际 %s",
		len(r.Mismatches), first.Index, first.Op, first.Want, first.Got)
}

// JSON 生成结果文档，multiline 为 true 时格式化成多行
//
//	{"kind":"fenwick","size":8,"results":[{"index":1,"op":"sum","value":5}],"mismatches":[]}
//
// 没有返回值的操作不出现在 results 中。
func (r *Report) JSON(multiline bool) string {
	doc := `{}`
	doc, _ = sjson.Set(doc, "kind", string(r.Script.Kind))
	doc, _ = sjson.Set(doc, "size", r.Script.Size)
	doc, _ = sjson.SetRaw(doc, "results", `[]`)
	for _, res := range r.Results {
		if res.Value == nil {
			continue
		}
		item := `{}`
		item, _ = sjson.Set(item, "index", res.Index)
		item, _ = sjson.Set(item, "op", res.Op.Name)
		item, _ = sjson.SetRaw(item, "value", encode(res.Value))
		doc, _ = sjson.SetRaw(doc, "results.-1", item)
	}
	doc, _ = sjson.SetRaw(doc, "mismatches", `[]`)
	for _, m := range r.Mismatches {
		doc, _ = sjson.Set(doc, "mismatches.-1", m)
	}

	if multiline {
		return string(pretty.Pretty([]byte(doc)))
	}
	return doc
}
