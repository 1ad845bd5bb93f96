// Package opscript 用 JSON 脚本驱动并查集和树状数组，方便在命令行里复现问题和做回归。
//
// 脚本格式:
//
//	{"kind": "disjointset", "size": 5, "init": false,
//	 "ops": [{"op": "makeall"}, {"op": "union", "x": 0, "y": 1},
//	         {"op": "find", "x": 0, "expect": 1}]}
//
//	{"kind": "fenwick", "size": 8,
//	 "ops": [{"op": "add", "place": 0, "value": 5}, {"op": "sum", "from": 0, "to": 7}]}
//
// 每条操作可以带 expect，执行结果和 expect 不一致时记入 mismatches。
package opscript

import (
	"fmt"
	"sort"
	"strings"

	"misc_tool/pkg/errorutil"

	"github.com/tidwall/gjson"
)

type Kind string

// MaxSize 是脚本允许的最大 size，防止一个脚本申请过多内存
const MaxSize = 1 << 24

const (
	KindDisjointSet Kind = "disjointset"
	KindFenwick     Kind = "fenwick"
)

// 每种结构支持的操作以及必须的参数
var opOperands = map[Kind]map[string][]string{
	KindDisjointSet: {
		"makeset": {"x"},
		"makeall": nil,
		"union":   {"x", "y"},
		"find":    {"x"},
		"same":    {"x", "y"},
		"count":   nil,
		"setsize": {"x"},
		"sets":    nil,
	},
	KindFenwick: {
		"add":    {"place", "value"},
		"sum":    {"from", "to"},
		"prefix": {"to"},
		"search": {"target"},
		"total":  nil,
	},
}

// Op 是脚本中的一条操作
type Op struct {
	Name   string
	Args   map[string]int64
	Expect string // expect 的原始 JSON，没有时为空
}

// Script 是解析后的脚本
type Script struct {
	Kind Kind
	Size int
	Init bool // 仅对 disjointset 有效：创建时就把所有元素初始化
	Ops  []Op
}

func invalid(format string, args ...any) error {
	return errorutil.Errorf(errorutil.CodeInvalidData, format, args...)
}

// SupportedOps 返回某种结构支持的操作名（排序后），给帮助信息用
func SupportedOps(kind Kind) []string {
	names := make([]string, 0, len(opOperands[kind]))
	for name := range opOperands[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse 解析脚本 JSON
func Parse(data []byte) (*Script, error) {
	if !gjson.ValidBytes(data) {
		return nil, invalid("脚本不是合法的 JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, invalid("脚本顶层必须是 JSON 对象")
	}

	s := &Script{Kind: Kind(root.Get("kind").String())}
	operands, ok := opOperands[s.Kind]
	if !ok {
		return nil, invalid("未知的 kind: %q (可选 %s, %s)", s.Kind, KindDisjointSet, KindFenwick)
	}

	size := root.Get("size")
	if size.Type != gjson.Number || size.Int() <= 0 || float64(size.Int()) != size.Float() {
		return nil, invalid("size 必须是正整数, 实际为 %s", strings.TrimSpace(size.Raw))
	}
	if size.Int() > MaxSize {
		return nil, invalid("size %d 超过上限 %d", size.Int(), MaxSize)
	}
	s.Size = int(size.Int())
	s.Init = root.Get("init").Bool()

	ops := root.Get("ops")
	if ops.Exists() && !ops.IsArray() {
		return nil, invalid("ops 必须是数组")
	}
	var parseErr error
	ops.ForEach(func(_, item gjson.Result) bool {
		op, err := parseOp(item, len(s.Ops), operands)
		if err != nil {
			parseErr = err
			return false
		}
		s.Ops = append(s.Ops, op)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return s, nil
}

func parseOp(item gjson.Result, pos int, operands map[string][]string) (Op, error) {
	if !item.IsObject() {
		return Op{}, invalid("第 %d 条操作必须是 JSON 对象", pos)
	}
	op := Op{Name: strings.ToLower(item.Get("op").String()), Args: make(map[string]int64)}
	names, ok := operands[op.Name]
	if !ok {
		return Op{}, invalid("第 %d 条操作: 未知的 op %q", pos, op.Name)
	}
	for _, name := range names {
		v := item.Get(name)
		if v.Type != gjson.Number || float64(v.Int()) != v.Float() {
			return Op{}, invalid("第 %d 条操作 %s: 参数 %s 缺失或不是整数", pos, op.Name, name)
		}
		op.Args[name] = v.Int()
	}
	if e := item.Get("expect"); e.Exists() {
		op.Expect = e.Raw
	}
	return op, nil
}

// String 把操作格式化成 union(x=0, y=1) 的样子，参数顺序固定
func (op Op) String() string {
	keys := make([]string, 0, len(op.Args))
	for k := range op.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, op.Args[k]))
	}
	return fmt.Sprintf("%s(%s)", op.Name, strings.Join(parts, ", "))
}
