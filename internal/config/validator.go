package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
	"github.com/kvishnublr/GetroRepo/pkg/strutil"
	"github.com/kvishnublr/GetroRepo/pkg/validation"
)

// newValidator 커스텀 태그(cors_origin, cron_spec, tls_file)가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 설정 키 이름을 표시합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return strutil.ToSnakeCase(fld.Name)
		}
		return name
	})

	custom := map[string]validator.Func{
		"cors_origin": func(fl validator.FieldLevel) bool {
			return validation.ValidateCORSOrigin(fl.Field().String()) == nil
		},
		"cron_spec": func(fl validator.FieldLevel) bool {
			return validation.ValidateCronExpression(fl.Field().String()) == nil
		},
		"tls_file": func(fl validator.FieldLevel) bool {
			return validation.ValidateFile(fl.Field().String()) == nil
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("'%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c); err != nil {
		return err
	}
	return c.API.CORS.validate()
}

// validate 와일드카드(*)는 단독으로만 허용합니다.
func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) > 1 {
		for _, origin := range c.AllowOrigins {
			if origin == "*" {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
			}
		}
	}
	return nil
}

// checkStruct 구조체를 검증하고 첫 번째 실패 항목을 설정 키 이름이 포함된 InvalidInput 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	fe := validationErrors[0]
	key := configKey(fe.Namespace())

	switch fe.Tag() {
	case "required_if":
		return apperrors.Newf(apperrors.InvalidInput, "%s 설정은 필수입니다 (조건: %s)", key, fe.Param())
	case "tls_file":
		return apperrors.Newf(apperrors.InvalidInput, "%s에 지정된 파일을 읽을 수 없습니다: '%v'", key, fe.Value())
	case "cors_origin":
		return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "cron_spec":
		return apperrors.Newf(apperrors.InvalidInput, "%s의 cron 표현식이 올바르지 않습니다: '%v' (예: 0 */5 * * * *)", key, fe.Value())
	}

	if fe.Param() != "" {
		return apperrors.Newf(apperrors.InvalidInput, "%s 설정이 올바르지 않습니다: '%v' (조건: %s=%s)", key, fe.Value(), fe.Tag(), fe.Param())
	}
	return apperrors.Newf(apperrors.InvalidInput, "%s 설정이 올바르지 않습니다: '%v' (조건: %s)", key, fe.Value(), fe.Tag())
}

// configKey "AppConfig.api.rate_limit.burst" 형태의 네임스페이스에서 루트 타입명을 떼어냅니다.
func configKey(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
