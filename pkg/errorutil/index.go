package errorutil

import (
	"errors"
	"fmt"
)

// IndexError 是索引类数据结构的前置条件被破坏时 panic 的值。
// 它属于编程错误，不是可恢复的业务错误，只有在脚本执行这种边界上才会被 CatchIndex 接住。
type IndexError struct {
	Op     string // 出错的操作，比如 "FindSet"
	Index  int
	Size   int
	Reason string // 为空表示越界
}

func (e *IndexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: index %d %s (size %d)", e.Op, e.Index, e.Reason, e.Size)
	}
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// CheckIndex 检查 0 <= i < size，不满足直接 panic
func CheckIndex(op string, i, size int) {
	if i < 0 || i >= size {
		panic(&IndexError{Op: op, Index: i, Size: size})
	}
}

// CatchIndex 只能在 defer 中调用，把 IndexError 类型的 panic 转成 CodeInvalidData 错误写回 *err，
// 其他类型的 panic 继续向上抛。
//
//	defer errorutil.CatchIndex(&err, "第 3 条操作")
func CatchIndex(err *error, where string) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*IndexError)
	if !ok {
		panic(r)
	}
	*err = NewExitErrorWithMessage(CodeInvalidData, where, ie)
}

// IsIndexError 判断错误链中是否有 IndexError
func IsIndexError(err error) bool {
	var ie *IndexError
	return errors.As(err, &ie)
}
