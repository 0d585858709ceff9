package sklog_test

import (
	"bytes"
	"testing"

	"github.com/arekfu/carlo/go/sklog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func withCapturedLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	sklog.SetLogger(l)
	return buf
}

func TestInfof_WritesFormattedMessage(t *testing.T) {
	buf := withCapturedLogger(t)
	sklog.Infof("job %s advanced to %d", "web", 2000)
	require.Contains(t, buf.String(), `level=info msg="job web advanced to 2000"`)
}

func TestWarningf_WritesAtWarnLevel(t *testing.T) {
	buf := withCapturedLogger(t)
	sklog.Warningf("job %s went back in time", "web")
	require.Contains(t, buf.String(), "level=warning")
	require.Contains(t, buf.String(), "went back in time")
}

func TestErrorf_WritesAtErrorLevel(t *testing.T) {
	buf := withCapturedLogger(t)
	sklog.Errorf("request to %s failed", "ci-a")
	require.Contains(t, buf.String(), "level=error")
}
