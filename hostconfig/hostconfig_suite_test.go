package hostconfig_test

import (
	"os"
	"testing"

	"github.com/denokit/denofunc/internal/testx"
)

func TestMain(m *testing.M) {
	testx.Logging()
	os.Exit(m.Run())
}
