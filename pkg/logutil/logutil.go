package logutil

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Level 是日志级别，值越小打印得越多
type Level int

// 定义日志级别
const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

// 为了让 cobra 的 VarP 直接接收 Level，实现 pflag.Value 接口(String Set Type)
func (l *Level) String() string {
	for name, v := range LOG_LEVELS {
		if v == *l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	v, ok := LOG_LEVELS[strings.ToUpper(val)]
	if !ok {
		return fmt.Errorf("无效的日志级别: %s (可选 DEBUG/INFO/WARN/ERROR)", val)
	}
	*l = v
	return nil
}

func (l *Level) Type() string {
	return "level"
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	once         sync.Once
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，允许指定输出目标（stdout 或 文件），只有第一次调用生效
func InitLogger(output string, level Level) {
	once.Do(func() {
		var err error
		if output == "" || output == "stdout" {
			logFile = os.Stdout
		} else {
			logFile, err = os.OpenFile(
				// 以追加模式打开日志文件，不会覆盖已有内容
				output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Fatal("无法创建日志文件:", err)
			}
		}
		mu.Lock()
		logger = log.New(logFile, "", log.LstdFlags)
		currentLevel = level
		mu.Unlock()
	})
}

// formatArg 切片和 map 转成 JSON，其他保持原值
func formatArg(arg any) any {
	v := reflect.ValueOf(arg)
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Map {
		return arg
	}
	jsonData, err := json.MarshalIndent(arg, "", "    ")
	if err != nil {
		return fmt.Sprintf("无法格式化: %v", err)
	}
	return string(jsonData)
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, msg string, args ...any) {
	if logger == nil {
		InitLogger("stdout", INFO) // 默认输出到控制台
	}

	mu.Lock()
	defer mu.Unlock()
	if level < currentLevel {
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	formattedArgs := make([]any, 0, len(args))
	for _, arg := range args {
		formattedArgs = append(formattedArgs, formatArg(arg))
	}
	logger.Printf("[%s:%d] %s", filepath.Base(file), line, fmt.Sprintf(msg, formattedArgs...))
}

// 设置日志级别
func SetLogLevel(level Level) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// 当前日志级别
func GetLogLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，并附带调用堆栈
func Error(msg string, args ...any) {
	size := 1024 // 初始缓冲区大小
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈作为参数传入，避免里面的 % 被当成格式化字符
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	if logFile != nil && logFile != os.Stdout {
		return logFile.Close()
	}
	return nil
}
