package statuscode

import "fmt"

// StatusCode 状态码定义（码值 + 默认提示信息）
type StatusCode struct {
	Code    int
	Message string
}

// 状态码分段约定：
//   - 200 成功，500 通用失败
//   - 1000~1999 参数错误
//   - 2000~2999 用户/权限错误
//   - 3000~3999 接口/内部错误
//
// 分段纪律由 registry_test 把关，运行期不做校验。
var (
	Success = register(200, "success")
	Fail    = register(500, "fail")

	// 参数错误 1000~1999
	ParamInvalid  = register(1001, "invalid parameter")
	ParamRequired = register(1002, "missing required parameter")
	ParamFormat   = register(1003, "parameter format error")

	// 用户错误 2000~2999
	UserNotFound     = register(2001, "user not found")
	DuplicateAccount = register(2002, "account already exists")
	PasswordInvalid  = register(2003, "invalid password")
	Unauthorized     = register(2004, "unauthorized")

	// 接口错误 3000~3999
	InterfaceInternal  = register(3001, "internal interface error")
	InterfaceTimeout   = register(3002, "interface call timeout")
	InterfaceRateLimit = register(3003, "interface rate limited")
)

// registry 码值 -> 状态码，启动期填充后只读
var registry = make(map[int]StatusCode)

// register 注册状态码，码值重复属于配置错误，启动即失败
func register(code int, message string) StatusCode {
	if _, ok := registry[code]; ok {
		panic(fmt.Sprintf("statuscode: duplicate code %d", code))
	}
	sc := StatusCode{Code: code, Message: message}
	registry[code] = sc
	return sc
}

// Lookup 根据码值查询已注册的状态码
func Lookup(code int) (StatusCode, bool) {
	sc, ok := registry[code]
	return sc, ok
}

// All 返回全部已注册状态码（拷贝，调用方可随意修改）
func All() []StatusCode {
	list := make([]StatusCode, 0, len(registry))
	for _, sc := range registry {
		list = append(list, sc)
	}
	return list
}
