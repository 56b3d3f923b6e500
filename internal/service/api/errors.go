package api

import (
	apperrors "github.com/kvishnublr/GetroRepo/internal/pkg/errors"
)

// ErrGeneratorNotInitialized 서비스 시작 시 추적 번호 생성기가 주입되지 않았을 때 반환하는 에러입니다.
var ErrGeneratorNotInitialized = apperrors.New(apperrors.Internal, "추적 번호 생성기가 초기화되지 않았습니다")
