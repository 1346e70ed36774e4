// Package output provides output formatting functionality for keyaddr commands.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pterm/pterm"
)

// Format 输出格式
type Format string

const (
	// FormatJSON 单行JSON（默认，便于管道处理）
	FormatJSON Format = "json"
	// FormatPretty pterm 表格
	FormatPretty Format = "pretty"
)

// ParseFormat 解析 --output 取值
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatPretty:
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("未知输出格式 %q，支持 json|pretty", s)
	}
}

// 表格中优先靠前的列，其余按字母序
var leadingColumns = []string{"index", "address", "valid", "version", "hash160", "checksum"}

// Formatter 输出格式化器
type Formatter struct {
	format    Format
	writer    io.Writer // 数据输出（JSON/表格）
	logWriter io.Writer // 提示输出（Info/Success/Warning）
}

// NewFormatter 创建格式化器
func NewFormatter(format Format, writer, logWriter io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}
	if logWriter == nil {
		logWriter = os.Stderr
	}

	return &Formatter{
		format:    format,
		writer:    writer,
		logWriter: logWriter,
	}
}

// Format 当前输出格式
func (f *Formatter) Format() Format {
	return f.format
}

// Print 打印输出
//
// data 先按 JSON 标签序列化；pretty 模式下对象渲染为 Key/Value 两列表格，
// 数组渲染为每个元素一行的表格。
func (f *Formatter) Print(data interface{}) error {
	switch f.format {
	case FormatPretty:
		return f.printTable(data)
	default:
		return f.printJSON(data)
	}
}

// printJSON 打印JSON格式
func (f *Formatter) printJSON(data interface{}) error {
	output, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := fmt.Fprintln(f.writer, string(output)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printTable 打印表格格式
func (f *Formatter) printTable(data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	var rows [][]string
	switch v := generic.(type) {
	case map[string]interface{}:
		rows = mapRows(v)
	case []interface{}:
		rows = sliceRows(v)
	default:
		rows = [][]string{{"Value"}, {formatValue(v)}}
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithWriter(f.writer).
		WithData(rows).
		Render()
}

// mapRows 两列: Key | Value
func mapRows(data map[string]interface{}) [][]string {
	rows := [][]string{{"Key", "Value"}}
	for _, key := range orderColumns(keysOf(data)) {
		rows = append(rows, []string{key, formatValue(data[key])})
	}
	return rows
}

// sliceRows 每个元素一行；元素不是对象时退化为 # | Value
func sliceRows(data []interface{}) [][]string {
	objects := make([]map[string]interface{}, 0, len(data))
	for _, item := range data {
		obj, ok := item.(map[string]interface{})
		if !ok {
			rows := [][]string{{"#", "Value"}}
			for i, value := range data {
				rows = append(rows, []string{fmt.Sprintf("%d", i), formatValue(value)})
			}
			return rows
		}
		objects = append(objects, obj)
	}

	columns := orderColumns(extractColumns(objects))
	rows := [][]string{columns}
	for _, obj := range objects {
		row := make([]string, len(columns))
		for i, col := range columns {
			if val, ok := obj[col]; ok {
				row[i] = formatValue(val)
			} else {
				row[i] = "-"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// PrintSuccess 打印成功消息（输出到 logWriter，避免污染 JSON）
func (f *Formatter) PrintSuccess(message string) {
	pterm.Success.WithWriter(f.logWriter).Println(message)
}

// PrintWarning 打印警告消息
func (f *Formatter) PrintWarning(message string) {
	pterm.Warning.WithWriter(f.logWriter).Println(message)
}

// PrintInfo 打印信息消息
func (f *Formatter) PrintInfo(message string) {
	pterm.Info.WithWriter(f.logWriter).Println(message)
}

// PrintError 打印错误消息
func (f *Formatter) PrintError(err error) {
	pterm.Error.WithWriter(f.logWriter).Println(err.Error())
}

// ===== 辅助函数 =====

// formatValue 格式化值
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		// JSON 数字统一解码为 float64，这里只会出现整数
		return fmt.Sprintf("%.0f", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "-"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

func keysOf(data map[string]interface{}) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	return keys
}

// extractColumns 提取所有列
func extractColumns(data []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	columns := make([]string, 0)

	for _, row := range data {
		for key := range row {
			if !columnSet[key] {
				columnSet[key] = true
				columns = append(columns, key)
			}
		}
	}

	return columns
}

// orderColumns leadingColumns 中的列按其顺序靠前，其余按字母序
func orderColumns(columns []string) []string {
	rank := make(map[string]int, len(leadingColumns))
	for i, col := range leadingColumns {
		rank[col] = i
	}

	sorted := append([]string(nil), columns...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iLead := rank[sorted[i]]
		rj, jLead := rank[sorted[j]]
		switch {
		case iLead && jLead:
			return ri < rj
		case iLead != jLead:
			return iLead
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}
