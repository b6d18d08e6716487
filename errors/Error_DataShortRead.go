package errors

import (
	"encoding/json"
	"fmt"
)

// ShortReadErrData describes a bounds check that failed: a field needed more bytes than the view held.
type ShortReadErrData struct {
	Needed    int `json:"needed"`
	Available int `json:"available"`
}

func (e *ShortReadErrData) Error() string {
	return fmt.Sprintf("needed %d bytes, %d available", e.Needed, e.Available)
}

func (e *ShortReadErrData) GetData(key string) interface{} {
	switch key {
	case "needed":
		return e.Needed
	case "available":
		return e.Available
	default:
		return nil
	}
}

func (e *ShortReadErrData) SetData(key string, value interface{}) {
	v, ok := value.(int)
	if !ok {
		return
	}

	switch key {
	case "needed":
		e.Needed = v
	case "available":
		e.Available = v
	}
}

func (e *ShortReadErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}
