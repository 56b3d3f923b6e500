package constants

// 요청 파라미터 이름
const (
	QueryParamCount = "count"
	PathParamID     = "id"
)

// SensitiveQueryParams HTTP 요청 로그에서 값을 가리는 쿼리 파라미터 목록
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
