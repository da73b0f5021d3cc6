package statuscode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	sc, ok := Lookup(Success.Code)
	require.True(t, ok)
	assert.Equal(t, "success", sc.Message)

	_, ok = Lookup(-1)
	assert.False(t, ok)
}

func TestRegisterPanicsOnDuplicateCode(t *testing.T) {
	assert.Panics(t, func() {
		register(Success.Code, "another success")
	})
}

// TestRangeDiscipline 分段纪律：各类错误码必须落在约定区间内
func TestRangeDiscipline(t *testing.T) {
	assert.Equal(t, 200, Success.Code)
	assert.Equal(t, 500, Fail.Code)

	for _, sc := range []StatusCode{ParamInvalid, ParamRequired, ParamFormat} {
		assert.GreaterOrEqual(t, sc.Code, 1000, sc.Message)
		assert.LessOrEqual(t, sc.Code, 1999, sc.Message)
	}
	for _, sc := range []StatusCode{UserNotFound, DuplicateAccount, PasswordInvalid, Unauthorized} {
		assert.GreaterOrEqual(t, sc.Code, 2000, sc.Message)
		assert.LessOrEqual(t, sc.Code, 2999, sc.Message)
	}
	for _, sc := range []StatusCode{InterfaceInternal, InterfaceTimeout, InterfaceRateLimit} {
		assert.GreaterOrEqual(t, sc.Code, 3000, sc.Message)
		assert.LessOrEqual(t, sc.Code, 3999, sc.Message)
	}
}

func TestAllReturnsEveryRegisteredCode(t *testing.T) {
	all := All()
	assert.Len(t, all, len(registry))

	seen := make(map[int]bool)
	for _, sc := range all {
		assert.False(t, seen[sc.Code], "duplicate code %d", sc.Code)
		seen[sc.Code] = true
	}
}
