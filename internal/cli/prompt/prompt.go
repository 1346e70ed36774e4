// Package prompt 读取不回显的敏感输入
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyInput 输入流在读到任何内容前结束
var ErrEmptyInput = errors.New("未读取到输入")

// ReadHidden 读取一行敏感输入
//
// in 是终端时关闭回显读取（x/term）；否则按普通流读取一行，便于管道输入。
// 只去掉行尾换行符，其余字符原样保留。
//
// 参数：
//   - in: 输入源
//   - out: 提示信息输出（通常为 stderr）
//   - label: 提示文字
//
// 返回：
//   - string: 输入内容
//   - error: 读取失败
func ReadHidden(in io.Reader, out io.Writer, label string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, label+": ")
		data, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("读取输入失败: %w", err)
		}
		return string(data), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrEmptyInput
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// ReadLines 逐行读取非空输入（batch 命令使用）
func ReadLines(in io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取输入失败: %w", err)
	}
	return lines, nil
}
