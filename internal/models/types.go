package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSON 类型定义，用于存储双语（vi/en）内容
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// Text 按语言取出文案，缺失时回退越南语，再回退任意值
func (j JSON) Text(locale string) string {
	if len(j) == 0 {
		return ""
	}
	if value, ok := j[locale].(string); ok && value != "" {
		return value
	}
	if value, ok := j["vi-VN"].(string); ok && value != "" {
		return value
	}
	for _, v := range j {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// StringArray 字符串数组类型，用于存储 images 等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}
