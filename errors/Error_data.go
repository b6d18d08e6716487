package errors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ErrDataI is structured data attached to an Error. It travels as JSON next to the error code.
type ErrDataI interface {
	EncodeErrorData() []byte
	Error() string
	GetData(key string) interface{}
	SetData(key string, value interface{})
}

// ErrData holds free form key value pairs for codes without a dedicated data type.
type ErrData map[string]interface{}

// Error renders the pairs sorted by key, so the text is stable across runs.
func (e *ErrData) Error() string {
	if e == nil || len(*e) == 0 {
		return ""
	}

	keys := make([]string, 0, len(*e))
	for k := range *e {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var sb strings.Builder

	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, (*e)[k])
	}

	return sb.String()
}

func (e *ErrData) SetData(key string, value interface{}) {
	if e == nil {
		return
	}

	if *e == nil {
		*e = ErrData{}
	}

	(*e)[key] = value
}

func (e *ErrData) GetData(key string) interface{} {
	if e == nil {
		return nil
	}

	return (*e)[key]
}

func (e *ErrData) EncodeErrorData() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return []byte{}
	}

	return data
}

// errDataTypes lists the codes whose data decodes into a dedicated type.
var errDataTypes = map[ERR]func() ErrDataI{
	ERR_INSUFFICIENT_BYTES: func() ErrDataI { return &ShortReadErrData{} },
}

// GetErrorData decodes dataBytes into the data type registered for code, ErrData otherwise.
// The returned value is usable even when decoding fails.
func GetErrorData(code ERR, dataBytes []byte) (ErrDataI, error) {
	var errData ErrDataI = &ErrData{}

	if newData, ok := errDataTypes[code]; ok {
		errData = newData()
	}

	if err := json.Unmarshal(dataBytes, errData); err != nil {
		return errData, err
	}

	return errData, nil
}
