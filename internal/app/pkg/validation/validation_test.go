package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstReturnsOnlyFirstViolation(t *testing.T) {
	rules := []Rule{
		{Field: "account", Value: "ab", Kind: KindLength, Params: Params{"min": 6, "max": 11}, Message: "account length must be between 6 and 11"},
		{Field: "email", Value: "bad-email", Kind: KindEmail, Message: "invalid email format"},
	}

	v := First(rules)
	require.NotNil(t, v)
	assert.Equal(t, "account", v.Field)
	assert.Equal(t, "account length must be between 6 and 11", v.Message)
}

func TestFirstPassesWhenAllRulesSatisfied(t *testing.T) {
	rules := []Rule{
		{Field: "account", Value: "user01", Kind: KindLength, Params: Params{"min": 6, "max": 11}},
		{Field: "email", Value: "u@example.com", Kind: KindEmail},
	}
	assert.Nil(t, First(rules))
}

func TestFirstUsesDefaultMessageWhenRuleMessageEmpty(t *testing.T) {
	v := First([]Rule{{Field: "email", Value: "nope", Kind: KindEmail}})
	require.NotNil(t, v)
	assert.Equal(t, "invalid email format", v.Message)
}

func TestNotBlank(t *testing.T) {
	assert.Nil(t, First([]Rule{{Field: "f", Value: "x", Kind: KindNotBlank}}))
	assert.NotNil(t, First([]Rule{{Field: "f", Value: "", Kind: KindNotBlank}}))
	assert.NotNil(t, First([]Rule{{Field: "f", Value: "   ", Kind: KindNotBlank}}))
	assert.NotNil(t, First([]Rule{{Field: "f", Value: nil, Kind: KindNotBlank}}))
}

func TestLengthBand(t *testing.T) {
	params := Params{"min": 6, "max": 11}

	// 边界内通过
	for _, s := range []string{"abcdef", "abcdefgh", "abcdefghijk"} {
		assert.Nil(t, First([]Rule{{Field: "account", Value: s, Kind: KindLength, Params: params}}), s)
	}
	// 边界外失败
	for _, s := range []string{"", "abcde", "abcdefghijkl"} {
		assert.NotNil(t, First([]Rule{{Field: "account", Value: s, Kind: KindLength, Params: params}}), s)
	}
}

func TestLengthCountsRunes(t *testing.T) {
	// 六个汉字按 6 计
	assert.Nil(t, First([]Rule{{
		Field: "nickname", Value: "用户昵称测试",
		Kind: KindLength, Params: Params{"min": 6, "max": 6},
	}}))
}

func TestEmailFormats(t *testing.T) {
	valid := []string{"u@example.com", "first.last@sub.example.org"}
	for _, s := range valid {
		assert.Nil(t, First([]Rule{{Field: "email", Value: s, Kind: KindEmail}}), s)
	}

	invalid := []string{"", "no-at-sign", "a@b", "u@@example.com"}
	for _, s := range invalid {
		assert.NotNil(t, First([]Rule{{Field: "email", Value: s, Kind: KindEmail}}), s)
	}
}

func TestRange(t *testing.T) {
	params := Params{"min": 1, "max": 100}
	assert.Nil(t, First([]Rule{{Field: "age", Value: 50, Kind: KindRange, Params: params}}))
	assert.Nil(t, First([]Rule{{Field: "age", Value: int64(1), Kind: KindRange, Params: params}}))
	assert.NotNil(t, First([]Rule{{Field: "age", Value: 0, Kind: KindRange, Params: params}}))
	assert.NotNil(t, First([]Rule{{Field: "age", Value: 101, Kind: KindRange, Params: params}}))
	assert.NotNil(t, First([]Rule{{Field: "age", Value: "not a number", Kind: KindRange, Params: params}}))
}

func TestPhoneAnchored(t *testing.T) {
	assert.Nil(t, First([]Rule{{Field: "phone", Value: "13800138000", Kind: KindPhone}}))
	assert.Nil(t, First([]Rule{{Field: "phone", Value: "19912345678", Kind: KindPhone}}))

	// 两端锚定：短串、带后缀、带前缀一律拒绝
	invalid := []string{
		"1380013800",     // 少一位
		"138001380001",   // 多一位
		"13800138000abc", // 垃圾后缀
		"a13800138000",   // 垃圾前缀
		"12345678901",    // 第二位非 3~9
		"",
	}
	for _, s := range invalid {
		assert.NotNil(t, First([]Rule{{Field: "phone", Value: s, Kind: KindPhone}}), s)
	}
}

func TestRegisterRejectsDuplicateKind(t *testing.T) {
	require.NoError(t, Register(Kind{
		Name:           "evenlen",
		Check:          func(v interface{}, _ Params) bool { s, _ := v.(string); return len(s)%2 == 0 },
		DefaultMessage: "length must be even",
	}))

	err := Register(Kind{Name: "evenlen", Check: func(interface{}, Params) bool { return true }})
	assert.Error(t, err)

	// 注册后与内置约束同等使用
	assert.Nil(t, First([]Rule{{Field: "f", Value: "ab", Kind: "evenlen"}}))
	v := First([]Rule{{Field: "f", Value: "abc", Kind: "evenlen"}})
	require.NotNil(t, v)
	assert.Equal(t, "length must be even", v.Message)
}

func TestRegisterRejectsIncompleteKind(t *testing.T) {
	assert.Error(t, Register(Kind{Name: "nocheck"}))
	assert.Error(t, Register(Kind{Check: func(interface{}, Params) bool { return true }}))
}

func TestFirstPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		First([]Rule{{Field: "f", Value: "x", Kind: "no-such-kind"}})
	})
}
