package countdown

import (
	"os"
	"testing"

	"github.com/kizuna-community/kizuna-api/mocks"
)

var countdownWorker *CountdownWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	countdownWorker = NewCountdownWorker("test", mongoMock)
	countdownWorker.Register()
	os.Exit(m.Run())
}
