package main

import (
	"fmt"
	"os"

	"misc_tool/pkg/errorutil"
	"misc_tool/pkg/graph"
	"misc_tool/pkg/logutil"
	"misc_tool/pkg/opscript"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20251017"

func main() {
	var rootCmd = &cobra.Command{
		Use:     "idxtool",
		Version: TOOL_VERSION,
		Short:   fmt.Sprintf("Idxtool v%s 用 JSON 脚本驱动并查集和树状数组，支持 run/verify/tree/graph 子命令", TOOL_VERSION),
		Long: "  _     _       _              _ \n" +
			" (_) __| |_  __| |_ ___   ___ | |\n" +
			" | |/ _` \\ \\/ /| __/ _ \\ / _ \\| |\n" +
			" | | (_| |>  < | || (_) | (_) | |\n" +
			" |_|\\__,_/_/\\_\\ \\__\\___/ \\___/|_|\n" +
			fmt.Sprintf("\nIdxtool v%s 用 JSON 脚本驱动并查集和树状数组，支持 run/verify/tree/graph 子命令\n", TOOL_VERSION),
	}

	rootCmd.AddCommand(opscript.RunCmd(), opscript.VerifyCmd(), opscript.TreeCmd(), graph.GraphCmd())
	var logFile string
	logLevel := logutil.WARN

	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "idxtool.log", "日志文件名(stdout 表示标准输出)")
	rootCmd.SilenceUsage = true
	// 错误由下面统一按 JSON 打印
	rootCmd.SilenceErrors = true
	// 子命令没有设置时会沿用根命令的
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
	})

	// flag 解析完成后再初始化日志
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logutil.InitLogger(logFile, logLevel)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		msg, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.Error("命令执行失败: %v", err)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用 defer，os.Exit 不会执行 defer
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
