package pagination

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("articles", "200", "11-50"))
	RecordRequest("articles", 200, 12)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("articles", "200", "11-50"))

	if after-before != 1 {
		t.Errorf("RequestsTotal delta = %v, want 1", after-before)
	}
}

func TestUpdateCollectionSize(t *testing.T) {
	UpdateCollectionSize("users", 42)
	if got := testutil.ToFloat64(CollectionSize.WithLabelValues("users")); got != 42 {
		t.Errorf("CollectionSize = %v, want 42", got)
	}
}

func TestGetPageRangeBucket(t *testing.T) {
	tests := map[int]string{1: "1-10", 10: "1-10", 11: "11-50", 51: "51-100", 101: "100+"}
	for page, want := range tests {
		if got := getPageRangeBucket(page); got != want {
			t.Errorf("getPageRangeBucket(%d) = %q, want %q", page, got, want)
		}
	}
}
