package opscript

import (
	"misc_tool/pkg/errorutil"
)

// Render 把执行完的结构打印成文本：并查集打印森林，树状数组打印槽位
func (r *Report) Render(style int) string {
	if r.ds != nil {
		return r.ds.PrintForest(style)
	}
	return r.ft.PrintSlots(style)
}

// DOT 导出并查集森林，树状数组不支持
func (r *Report) DOT() (string, error) {
	if r.ds == nil {
		return "", errorutil.Errorf(errorutil.CodeInvalidUsage, "%s 不支持导出 DOT", r.Script.Kind)
	}
	return r.ds.DOT("dsu")
}
