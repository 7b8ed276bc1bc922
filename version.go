package sigment

// Version is the published SDK version.
// 0.4.0: Breaking - Drop the X-User-Id request header; identity now travels
// only in the bearer token. Add auth.ParseClaims for client-side role gating.
// 0.3.0: Add ClustersClient with RankClusters ordering, IntegrationsClient.
// 0.2.0: Breaking - Canonical credential key is access_token (was
// sigment_token); FileStore does not migrate old files.
const Version = "0.4.0"
