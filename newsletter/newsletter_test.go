package newsletter

import (
	"testing"

	"brookside/models"
)

func TestDecideSubscribe(t *testing.T) {
	if got := decideSubscribe(nil); got != subscribeNew {
		t.Errorf("no record: got %v, want subscribeNew", got)
	}
	if got := decideSubscribe(&models.Subscriber{Active: true}); got != subscribeConflict {
		t.Errorf("active record: got %v, want subscribeConflict", got)
	}
	if got := decideSubscribe(&models.Subscriber{Active: false}); got != subscribeReactivate {
		t.Errorf("inactive record: got %v, want subscribeReactivate", got)
	}
}
