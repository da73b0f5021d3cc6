package ginx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucenter/internal/app/pkg/statuscode"
)

func TestSuccess(t *testing.T) {
	r := Success(map[string]int{"n": 1})
	assert.Equal(t, statuscode.Success.Code, r.Code)
	assert.Equal(t, map[string]int{"n": 1}, r.Data)
	assert.Empty(t, r.Message)
}

func TestFail(t *testing.T) {
	r := Fail("boom")
	assert.Equal(t, statuscode.Fail.Code, r.Code)
	assert.Nil(t, r.Data)
	assert.Equal(t, "boom", r.Message)
}

// TestWithCodeRoundTrip data 经过构造后原样可读
func TestWithCodeRoundTrip(t *testing.T) {
	payload := struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}{ID: 42, Name: "user01"}

	r := WithCode(statuscode.Success, payload)
	assert.Equal(t, payload, r.Data)
	assert.Equal(t, statuscode.Success.Message, r.Message)
}

// TestResultWireFormat code/data/message 三个字段名是对外契约
func TestResultWireFormat(t *testing.T) {
	raw, err := json.Marshal(WithCode(statuscode.UserNotFound, nil))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(statuscode.UserNotFound.Code), decoded["code"])
	assert.Equal(t, statuscode.UserNotFound.Message, decoded["message"])
	_, hasData := decoded["data"]
	assert.False(t, hasData)
}
