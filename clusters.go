package sigment

import (
	"context"
	"sort"

	"github.com/sigment/sigment-go/routes"
)

// ClustersClient covers the dashboard's cluster ranking view.
type ClustersClient struct {
	client *Client
}

// List returns the organization's clusters in server order.
func (c *ClustersClient) List(ctx context.Context) ([]Cluster, error) {
	var payload struct {
		Clusters []Cluster `json:"clusters"`
	}
	if err := c.client.Get(ctx, routes.Clusters, &payload); err != nil {
		return nil, err
	}
	return payload.Clusters, nil
}

// Ranked fetches the clusters and returns them in ranking order.
func (c *ClustersClient) Ranked(ctx context.Context) ([]Cluster, error) {
	clusters, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	RankClusters(clusters)
	return clusters, nil
}

// RankClusters orders clusters for display: score descending, member
// count descending on equal score. The sort is stable so equal clusters
// keep their server order.
func RankClusters(clusters []Cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		if clusters[i].Score != clusters[j].Score {
			return clusters[i].Score > clusters[j].Score
		}
		return clusters[i].MemberCount > clusters[j].MemberCount
	})
}
