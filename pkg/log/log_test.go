package log

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponentAndFields(t *testing.T) {
	fields := Fields{"node": "host-ab12cd34", "component": "ignored"}

	entry := WithComponentAndFields("trackingnum", fields)

	assert.Equal(t, "trackingnum", entry.Data["component"])
	assert.Equal(t, "host-ab12cd34", entry.Data["node"])
	assert.Equal(t, "ignored", fields["component"], "원본 맵은 변경되지 않아야 합니다")
}

func TestWithComponent(t *testing.T) {
	assert.Equal(t, "api", WithComponent("api").Data["component"])
	assert.Equal(t, 1, WithFields(Fields{"a": 1}).Data["a"])
}

func TestSetDebugMode(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(InfoLevel) })

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}

func TestMaskSensitiveData(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcdefgh", "abcd***"},
		{"abcdefghijklmnop", "abcd***mnop"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskSensitiveData(tt.in))
	}
}

func TestTextFormatter_CallerPrefix(t *testing.T) {
	f := newTextFormatter("github.com/kvishnublr")
	require.NotNil(t, f.CallerPrettyfier)

	function, file := f.CallerPrettyfier(&runtime.Frame{
		Function: "github.com/kvishnublr/GetroRepo/internal/trackingnum.(*Generator).Next",
		Line:     42,
	})

	assert.Equal(t, ".../GetroRepo/internal/trackingnum.(*Generator).Next(line:42)", function)
	assert.Empty(t, file)

	b, err := (&silentFormatter{}).Format(nil)
	assert.NoError(t, err)
	assert.Nil(t, b)
}
