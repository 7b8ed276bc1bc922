package sigment

import (
	"context"
	"reflect"
	"testing"

	"github.com/sigment/sigment-go/testutil"
)

func TestRankClusters(t *testing.T) {
	clusters := []Cluster{
		{ID: "a", Score: 1.0, MemberCount: 4},
		{ID: "b", Score: 3.5, MemberCount: 2},
		{ID: "c", Score: 1.0, MemberCount: 9},
		{ID: "d", Score: 3.5, MemberCount: 2},
		{ID: "e", Score: 2.0, MemberCount: 1},
	}
	RankClusters(clusters)

	var order []string
	for _, c := range clusters {
		order = append(order, c.ID)
	}
	// b before d: equal on both fields, stable sort keeps input order.
	want := []string{"b", "d", "e", "c", "a"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestClustersRanked(t *testing.T) {
	srv, _ := testutil.NewJSONServer(map[string]testutil.JSONResponse{
		"/api/v1/clusters": {Body: map[string]any{
			"clusters": []Cluster{
				{ID: "low", Score: 0.5, MemberCount: 1},
				{ID: "high", Score: 9.0, MemberCount: 3},
			},
		}},
	})
	defer srv.Close()

	client := newTestClient(t, srv, testIdentity())
	ranked, err := client.Clusters.Ranked(context.Background())
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}
	if len(ranked) != 2 || ranked[0].ID != "high" {
		t.Errorf("ranked = %v, want high first", ranked)
	}
}
