package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pairup/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		l := config.NewLoggerForTest("info", "json", "stdout")
		closer, err := l.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level fails", func(t *testing.T) {
		l := config.NewLoggerForTest("verbose", "json", "stdout")
		_, err := l.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid format fails", func(t *testing.T) {
		l := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := l.Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("file output creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pairup.log")
		l := config.NewLoggerForTest("info", "json", path)

		closer, err := l.Configure()
		gt.NoError(t, err).Required()
		closer()

		_, err = os.Stat(path)
		gt.NoError(t, err)
	})
}
