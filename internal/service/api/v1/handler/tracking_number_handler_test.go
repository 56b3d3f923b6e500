package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kvishnublr/GetroRepo/internal/service/api/constants"
	"github.com/kvishnublr/GetroRepo/internal/service/api/httputil"
	"github.com/kvishnublr/GetroRepo/internal/trackingnum"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) NextN(n int) []string {
	args := m.Called(n)
	return args.Get(0).([]string)
}

func newTestGenerator(t *testing.T, start int64) *trackingnum.Generator {
	t.Helper()

	g, err := trackingnum.NewGenerator("host-ab12cd34",
		trackingnum.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		trackingnum.WithSequence(trackingnum.NewSequence(start)),
	)
	require.NoError(t, err)

	return g
}

// newTestEcho 라우터와 전역 에러 핸들러가 설정된 Echo 인스턴스를 생성합니다.
func newTestEcho(h *Handler) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	e.POST("/api/v1/tracking-numbers", h.IssueTrackingNumbersHandler)
	e.GET("/api/v1/tracking-numbers/:id", h.ParseTrackingNumberHandler)
	return e
}

func do(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("최대 개수 지정", func(t *testing.T) {
		t.Parallel()
		h := NewHandler(&mockIssuer{}, 10)
		assert.Equal(t, 10, h.maxBatchSize)
	})

	t.Run("최대 개수가 0이면 기본값", func(t *testing.T) {
		t.Parallel()
		h := NewHandler(&mockIssuer{}, 0)
		assert.Equal(t, constants.DefaultMaxBatchSize, h.maxBatchSize)
	})

	t.Run("Issuer가 nil이면 panic", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, constants.PanicMsgGeneratorRequired, func() {
			NewHandler(nil, 10)
		})
	})
}

func TestIssueTrackingNumbersHandler(t *testing.T) {
	t.Parallel()

	t.Run("count 생략 시 1개 발급", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho(NewHandler(newTestGenerator(t, 0), 10))

		rec := do(e, http.MethodPost, "/api/v1/tracking-numbers")
		body := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(http.StatusOK), gjson.Get(body, "result_code").Int())
		ids := gjson.Get(body, "tracking_numbers").Array()
		require.Len(t, ids, 1)
		assert.Equal(t, "host-ab12cd34-1700000000000-000000", ids[0].String())
	})

	t.Run("경계값을 넘는 연속 발급", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho(NewHandler(newTestGenerator(t, 999998), 10))

		rec := do(e, http.MethodPost, "/api/v1/tracking-numbers?count=3")
		require.Equal(t, http.StatusOK, rec.Code)

		var got []string
		for _, id := range gjson.Get(rec.Body.String(), "tracking_numbers").Array() {
			got = append(got, id.String())
		}
		assert.Equal(t, []string{
			"host-ab12cd34-1700000000000-999998",
			"host-ab12cd34-1700000000000-999999",
			"host-ab12cd34-1700000000000-000000",
		}, got)
	})

	t.Run("최대 개수까지 허용", func(t *testing.T) {
		t.Parallel()

		issuer := &mockIssuer{}
		issuer.On("NextN", 5).Return([]string{"a", "b", "c", "d", "e"}).Once()
		e := newTestEcho(NewHandler(issuer, 5))

		rec := do(e, http.MethodPost, "/api/v1/tracking-numbers?count=5")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, gjson.Get(rec.Body.String(), "tracking_numbers").Array(), 5)
		issuer.AssertExpectations(t)
	})

	invalid := []struct {
		name  string
		count string
	}{
		{"0", "0"},
		{"음수", "-1"},
		{"최대 개수 초과", "6"},
		{"숫자가 아님", "abc"},
		{"소수", "1.5"},
	}
	for _, tt := range invalid {
		t.Run("잘못된 count: "+tt.name, func(t *testing.T) {
			t.Parallel()

			issuer := &mockIssuer{}
			e := newTestEcho(NewHandler(issuer, 5))

			rec := do(e, http.MethodPost, "/api/v1/tracking-numbers?count="+tt.count)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, int64(http.StatusBadRequest), gjson.Get(rec.Body.String(), "result_code").Int())
			assert.Contains(t, gjson.Get(rec.Body.String(), "message").String(), "5")
			issuer.AssertNotCalled(t, "NextN", mock.Anything)
		})
	}
}

func TestParseTrackingNumberHandler(t *testing.T) {
	t.Parallel()

	e := newTestEcho(NewHandler(&mockIssuer{}, 10))

	t.Run("하이픈이 포함된 호스트 이름", func(t *testing.T) {
		t.Parallel()

		rec := do(e, http.MethodGet, "/api/v1/tracking-numbers/web-01-ab12cd34-1700000000000-000042")
		body := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "web-01-ab12cd34", gjson.Get(body, "node").String())
		assert.Equal(t, int64(1700000000000), gjson.Get(body, "timestamp").Int())
		assert.Equal(t, int64(42), gjson.Get(body, "sequence").Int())
		assert.Equal(t, "2023-11-14T22:13:20Z", gjson.Get(body, "issued_at").String())
		assert.Equal(t, "web-01-ab12cd34-1700000000000-000042", gjson.Get(body, "tracking_number").String())
	})

	malformed := []string{
		"not-a-number",
		"host-ab12cd34-1700000000000-42",
		"host-ab12cd34-17000x0000000-000042",
		"-1700000000000-000042",
	}
	for _, id := range malformed {
		t.Run("형식 오류: "+id, func(t *testing.T) {
			t.Parallel()

			rec := do(e, http.MethodGet, "/api/v1/tracking-numbers/"+id)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, gjson.Get(rec.Body.String(), "message").String())
		})
	}

	t.Run("발급한 번호를 다시 분해", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(t, 7)
		id := g.Next()

		rec := do(e, http.MethodGet, "/api/v1/tracking-numbers/"+id)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), gjson.Get(rec.Body.String(), "sequence").Int())
		assert.Equal(t, id, gjson.Get(rec.Body.String(), "tracking_number").String())
	})
}
