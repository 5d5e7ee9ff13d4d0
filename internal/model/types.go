package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray 以JSON文本存储的字符串数组字段
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("StringArray: 不支持的数据类型")
	}
	if len(data) == 0 {
		*a = StringArray{}
		return nil
	}
	return json.Unmarshal(data, a)
}
