package opscript

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"misc_tool/pkg/diffutil"
	"misc_tool/pkg/errorutil"
	"misc_tool/pkg/logutil"
	"misc_tool/pkg/treeprinter"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type OutputFormat string

const (
	OutputFormatOne OutputFormat = "one"
	OutputFormatMul OutputFormat = "mul"
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *OutputFormat) String() string { return string(*f) }

func (f *OutputFormat) Set(val string) error {
	switch val {
	case string(OutputFormatOne), string(OutputFormatMul):
		*f = OutputFormat(val)
		return nil
	default:
		return fmt.Errorf("无效的输出格式: %s (可选 one/mul)", val)
	}
}

func (f *OutputFormat) Type() string { return "format" }

type RenderType string

const (
	RenderTypeTxt RenderType = "txt"
	RenderTypeDot RenderType = "dot"
)

func (r *RenderType) String() string { return string(*r) }

func (r *RenderType) Set(val string) error {
	switch val {
	case string(RenderTypeTxt), string(RenderTypeDot):
		*r = RenderType(val)
		return nil
	default:
		return fmt.Errorf("无效的打印类型: %s (可选 txt/dot)", val)
	}
}

func (r *RenderType) Type() string { return "render" }

// readInput 读取文件，"-" 表示标准输入
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return nil, errorutil.Errorf(errorutil.CodeMissingInput, "缺少输入文件 (-i)")
	}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取标准输入失败", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "文件不存在", err)
	}
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取文件失败", err)
	}
	return data, nil
}

// loadAndRun 读取并执行脚本，是三个子命令共同的前半段
func loadAndRun(cmd *cobra.Command, input string) (*Report, error) {
	data, err := readInput(input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logutil.Debug("脚本 %s 解析完成: kind=%s size=%d ops=%d", input, s.Kind, s.Size, len(s.Ops))
	return Run(s)
}

const scriptHelp = `脚本格式(JSON):

  {"kind": "disjointset", "size": 5, "init": false,
   "ops": [{"op": "makeall"},
           {"op": "union", "x": 0, "y": 1},
           {"op": "find", "x": 0, "expect": 1}]}

  {"kind": "fenwick", "size": 8,
   "ops": [{"op": "add", "place": 0, "value": 5},
           {"op": "sum", "from": 0, "to": 7, "expect": 5}]}

disjointset 支持的 op: ` + "%s" + `
fenwick 支持的 op: ` + "%s" + `
`

func longHelp(short string) string {
	return short + "\n\n" + fmt.Sprintf(scriptHelp,
		strings.Join(SupportedOps(KindDisjointSet), " "),
		strings.Join(SupportedOps(KindFenwick), " "))
}

// RunCmd 执行脚本并输出结果 JSON，有 expect 不符时返回 CodeAssertionFailed
func RunCmd() *cobra.Command {
	var input string
	format := OutputFormatMul

	cmd := &cobra.Command{
		Use:   "run",
		Short: "执行操作脚本并输出结果 JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadAndRun(cmd, input)
			if err != nil {
				return err
			}
			out := rep.JSON(format == OutputFormatMul)
			fmt.Fprint(cmd.OutOrStdout(), strings.TrimSuffix(out, "\n")+"\n")
			return rep.Err()
		},
	}
	cmd.Long = longHelp(cmd.Short)
	cmd.Flags().StringVarP(&input, "input", "i", "", "脚本文件，- 表示标准输入")
	cmd.Flags().VarP(&format, "format", "f", "输出格式(one 单行 / mul 多行)")
	return cmd
}

// VerifyCmd 执行脚本，把结果和 golden 文件比较，不一致时打印左右对比
func VerifyCmd() *cobra.Command {
	var input, golden string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "执行操作脚本并和 golden 结果比较",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := loadAndRun(cmd, input)
			if err != nil {
				return err
			}
			want, err := readInput(golden, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !gjson.ValidBytes(want) {
				return errorutil.Errorf(errorutil.CodeInvalidData, "golden 文件 %s 不是合法的 JSON", golden)
			}

			// 两边都先压缩再格式化，排除缩进差异
			expected := string(pretty.Pretty(pretty.Ugly(want)))
			actual := rep.JSON(true)
			lines := diffutil.Compare(expected, actual)
			if diffutil.HasChanges(lines) {
				fmt.Fprint(cmd.OutOrStdout(), diffutil.SideBySide(lines, "* Golden", "* Actual"))
				return errorutil.Errorf(errorutil.CodeAssertionFailed, "结果和 golden 文件 %s 不一致", golden)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return rep.Err()
		},
	}
	cmd.Long = longHelp(cmd.Short)
	cmd.Flags().StringVarP(&input, "input", "i", "", "脚本文件，- 表示标准输入")
	cmd.Flags().StringVarP(&golden, "golden", "g", "", "期望的结果 JSON 文件")
	return cmd
}

// TreeCmd 执行脚本后打印最终的结构
func TreeCmd() *cobra.Command {
	var (
		input string
		style int
	)
	render := RenderTypeTxt

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "执行操作脚本并打印最终的森林 / 槽位",
		RunE: func(cmd *cobra.Command, args []string) error {
			if style != treeprinter.StyleASCII && style != treeprinter.StyleUnicode {
				return errorutil.Errorf(errorutil.CodeInvalidUsage, "无效的 style: %d (可选 0/1)", style)
			}
			rep, err := loadAndRun(cmd, input)
			if err != nil {
				return err
			}
			if render == RenderTypeDot {
				dot, err := rep.DOT()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dot)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rep.Render(style))
			return nil
		},
	}
	cmd.Long = longHelp(cmd.Short)
	cmd.Flags().StringVarP(&input, "input", "i", "", "脚本文件，- 表示标准输入")
	cmd.Flags().VarP(&render, "type", "t", "打印类型(txt 文本 / dot Graphviz)")
	cmd.Flags().IntVarP(&style, "style", "s", treeprinter.StyleUnicode, "文本风格(0 ascii / 1 unicode)")
	return cmd
}
