package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/scout/oerror"
)

func TestIsTruePanicsWithError(t *testing.T) {
	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", v)
		}
		var sErr *oerror.ScoutError
		if !errors.As(err, &sErr) || sErr.Error() != "heat 120 above max 100" {
			t.Fatalf("unexpected panic value %v", err)
		}
	}()
	IsTrue(true, "never")
	IsTrue(false, "heat %d above max %d", 120, 100)
}
