package platform_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/framealloc/platform"
)

func TestHostPutCharFlushesOnNewline(t *testing.T) {
	var out bytes.Buffer
	host := platform.NewHost(&out, func(code int) {})

	for _, c := range []byte("ok") {
		host.PutChar(c)
	}
	require.Empty(t, out.String())

	host.PutChar('\n')
	require.Equal(t, "ok\n", out.String())
}

func TestHostShutdown(t *testing.T) {
	var out bytes.Buffer
	var codes []int
	host := platform.NewHost(&out, func(code int) {
		codes = append(codes, code)
	})

	host.PutChar('x')
	host.Shutdown(true)
	require.Equal(t, "x", out.String())

	host.Shutdown(false)
	require.Equal(t, []int{1, 0}, codes)
}
